package flame

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	fonts, err := assets.LoadFonts()
	require.NoError(t, err)
	env := &scene.Env{
		Assets: assets.NewCache(fonts),
		Config: config.Default(),
		Rand:   rand.New(rand.NewSource(3)),
	}
	s := New(env)
	s.OnResize(1024, 768)
	return s
}

func TestNew_PoolAndSprites(t *testing.T) {
	s := newTestScene(t)
	assert.Equal(t, Label, s.Label())
	require.Equal(t, 10, s.Pool().Len())
	require.Len(t, s.sprites, 10)
	for _, sp := range s.sprites {
		assert.Equal(t, ebiten.BlendLighter, sp.Blend)
		assert.False(t, sp.Visible)
	}
	assert.Equal(t, 120.0, s.Pool().OriginY)
}

func TestUpdate_StaggeredIgnitionAndSync(t *testing.T) {
	s := newTestScene(t)

	s.Update(0.01)
	assert.True(t, s.sprites[0].Visible)
	assert.False(t, s.sprites[9].Visible)

	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	for i, sp := range s.sprites {
		p := s.Pool().At(i)
		require.True(t, p.Active)
		assert.True(t, sp.Visible)
		assert.Equal(t, p.X, sp.X)
		assert.Equal(t, p.Y, sp.Y)
		assert.Equal(t, p.Scale, sp.ScaleX)
		assert.Equal(t, p.Alpha, sp.Alpha)
		assert.Equal(t, p.Tint, sp.Tint)
	}
}

func TestUpdate_PoolSizeIsConstant(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
		require.Equal(t, 10, s.emitter.NumChildren())
	}
	respawned := 0
	for i := 0; i < s.Pool().Len(); i++ {
		if s.Pool().At(i).Spawns > 1 {
			respawned++
		}
	}
	assert.Equal(t, 10, respawned, "every particle cycles")
}

func TestDispose(t *testing.T) {
	s := newTestScene(t)
	s.Dispose()
	assert.True(t, s.emitter.IsDisposed())
	assert.True(t, s.Disposed())
}
