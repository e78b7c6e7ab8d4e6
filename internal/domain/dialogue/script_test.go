package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `{
  "dialogue": [
    {"name": "Sheldon", "text": "Hello {smile} there"},
    {"name": "Penny", "text": "Hi Sheldon!"},
    {"name": "Leonard", "text": "{intrigued} What?"}
  ],
  "emojies": [
    {"name": "smile", "url": "https://example.test/smile.png"},
    {"name": "intrigued", "url": "https://example.test/intrigued.png"}
  ],
  "avatars": [
    {"name": "Sheldon", "url": "https://example.test/sheldon.png", "position": "left"},
    {"name": "Penny", "url": "https://example.test/penny.png", "position": "right"}
  ]
}`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleScript))
	require.NoError(t, err)

	assert.Len(t, s.Dialogue, 3)
	assert.Len(t, s.Emojies, 2)
	assert.Len(t, s.Avatars, 2)
	assert.Equal(t, SideRight, s.Avatars[1].Position)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestScript_SideOf(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleScript))
	require.NoError(t, err)

	assert.Equal(t, SideLeft, s.SideOf("Sheldon"))
	assert.Equal(t, SideRight, s.SideOf("Penny"))
	assert.Equal(t, SideLeft, s.SideOf("Leonard"), "unknown speakers default to left")
}

func TestScript_Assets(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleScript))
	require.NoError(t, err)

	assets := s.Assets()
	require.Len(t, assets, 4)
	assert.Equal(t, AssetAvatar, assets[0].Kind)
	assert.Equal(t, "Sheldon", assets[0].Name)
	assert.Equal(t, AssetEmoji, assets[3].Kind)
	assert.Equal(t, "intrigued", assets[3].Name)
}
