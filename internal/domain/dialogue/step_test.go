package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantClean string
		wantEmoji string
		wantOK    bool
	}{
		{"inline token", "Hello {smile} there", "Hello  there", "smile", true},
		{"no token", "Plain line", "Plain line", "", false},
		{"leading token", "{sad} oh no", " oh no", "sad", true},
		{"first of two", "{a} and {b}", " and ", "a", true},
		{"unclosed brace", "open { brace", "open { brace", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, emoji, ok := ParseText(tt.input)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantEmoji, emoji)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestBuildSteps(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleScript))
	require.NoError(t, err)

	avatars := map[string]string{"Sheldon": "sheldon-img"}
	emojis := map[string]string{"smile": "smile-img"}

	steps := BuildSteps(s, avatars, emojis, "placeholder")
	require.Len(t, steps, 3)

	assert.Equal(t, "Hello  there", steps[0].Text)
	assert.True(t, steps[0].HasEmoji)
	assert.Equal(t, "smile-img", steps[0].Emoji)
	assert.Equal(t, "sheldon-img", steps[0].Avatar)
	assert.Equal(t, SideLeft, steps[0].Side)

	assert.False(t, steps[1].HasEmoji, "no markup means no emoji")
	assert.Equal(t, "placeholder", steps[1].Avatar, "failed avatar falls back to placeholder")
	assert.Equal(t, SideRight, steps[1].Side)

	assert.False(t, steps[2].HasEmoji, "emoji image not loaded is omitted")
	assert.Equal(t, " What?", steps[2].Text)
}
