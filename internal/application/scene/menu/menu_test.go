package menu

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/application/scene/cardstack"
	"github.com/younwookim/taskshow/internal/application/scene/conversation"
	"github.com/younwookim/taskshow/internal/application/scene/flame"
	"github.com/younwookim/taskshow/internal/application/system"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
)

type recordingNav struct {
	scenes []scene.Scene
}

func (n *recordingNav) GoToScene(next scene.Scene) {
	n.scenes = append(n.scenes, next)
}

type stubScene struct {
	label string
}

func (s *stubScene) Label() string             { return s.label }
func (s *stubScene) Update(float64)            {}
func (s *stubScene) OnResize(float64, float64) {}
func (s *stubScene) Draw(*ebiten.Image)        {}
func (s *stubScene) Dispose()                  {}

type fakePointer struct {
	state system.PointerState
}

func (f *fakePointer) ReadPointer() system.PointerState {
	return f.state
}

func newTestEnv(t *testing.T) (*scene.Env, *recordingNav, *fakePointer) {
	t.Helper()
	fonts, err := assets.LoadFonts()
	require.NoError(t, err)
	nav := &recordingNav{}
	src := &fakePointer{}
	return &scene.Env{
		Nav:    nav,
		Assets: assets.NewCache(fonts),
		Input:  system.NewInputSystem(src),
		Config: config.Default(),
		Rand:   rand.New(rand.NewSource(1)),
	}, nav, src
}

func TestEntries_UseTaskLabels(t *testing.T) {
	var labels []string
	for _, e := range Entries() {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{cardstack.Label, conversation.Label, flame.Label}, labels)
}

func TestNew_ButtonsLabelled(t *testing.T) {
	env, _, _ := newTestEnv(t)
	m := New(env)
	assert.Equal(t, Label, m.Label())
	require.Len(t, m.Buttons(), 3)
	assert.Equal(t, cardstack.Label, m.Buttons()[0].Text())
	assert.Equal(t, Title, m.title.Text)
}

func TestOnResize_Spacing(t *testing.T) {
	env, _, _ := newTestEnv(t)
	m := New(env)

	m.OnResize(1024, 768)
	b := m.Buttons()
	assert.Equal(t, 512.0, m.root.X)
	assert.Equal(t, 100.0, b[1].Node.Y-b[0].Node.Y)
	assert.Equal(t, 100.0, b[0].Node.Y-m.title.Y)
	desktop := m.title.Face

	m.OnResize(400, 800)
	assert.Equal(t, 70.0, b[1].Node.Y-b[0].Node.Y)
	assert.NotSame(t, desktop, m.title.Face)
}

func TestUpdate_ClickOpensFreshScene(t *testing.T) {
	env, nav, src := newTestEnv(t)
	built := 0
	m := NewWithEntries(env, []Entry{
		{Label: "A", New: func(*scene.Env) scene.Scene { built++; return &stubScene{label: "A"} }},
		{Label: "B", New: func(*scene.Env) scene.Scene { built++; return &stubScene{label: "B"} }},
	})
	m.OnResize(1024, 768)

	// Second button center in screen space.
	x, y := m.Buttons()[1].Node.ToGlobal(0, 0)
	frame := func(st system.PointerState) {
		src.state = st
		env.Input.Poll()
		m.Update(1.0 / 60)
	}

	frame(system.PointerState{X: x, Y: y, Down: true, JustPressed: true})
	assert.Empty(t, nav.scenes)
	frame(system.PointerState{X: x, Y: y, JustReleased: true})

	require.Len(t, nav.scenes, 1)
	assert.Equal(t, "B", nav.scenes[0].Label())
	assert.Equal(t, 1, built)
}
