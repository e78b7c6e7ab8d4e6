// Package menu implements the task selection scene.
package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/application/scene/cardstack"
	"github.com/younwookim/taskshow/internal/application/scene/conversation"
	"github.com/younwookim/taskshow/internal/application/scene/flame"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
	"github.com/younwookim/taskshow/internal/render"
	"github.com/younwookim/taskshow/internal/ui"
)

// Label identifies the menu. The scene manager hides the back control
// for scenes carrying this label.
const Label = "Menu Scene"

// Title is the heading shown above the buttons.
const Title = "Test Tasks Menu"

const (
	spacingDesktop = 100
	spacingMobile  = 70
)

// Entry is one menu button and the scene it opens.
type Entry struct {
	Label string
	New   func(env *scene.Env) scene.Scene
}

// Entries returns the three tasks in menu order.
func Entries() []Entry {
	return []Entry{
		{Label: cardstack.Label, New: func(env *scene.Env) scene.Scene { return cardstack.New(env) }},
		{Label: conversation.Label, New: func(env *scene.Env) scene.Scene { return conversation.New(env) }},
		{Label: flame.Label, New: func(env *scene.Env) scene.Scene { return flame.New(env) }},
	}
}

// Scene is the menu.
type Scene struct {
	env     *scene.Env
	root    *render.Node
	title   *render.Node
	entries []Entry
	buttons []*ui.Button
}

// New creates the menu with the default entries.
func New(env *scene.Env) *Scene {
	return NewWithEntries(env, Entries())
}

// NewWithEntries creates a menu listing entries.
func NewWithEntries(env *scene.Env, entries []Entry) *Scene {
	s := &Scene{
		env:     env,
		root:    render.NewContainer(Label),
		entries: entries,
	}
	s.title = render.NewText("title", Title, env.Assets.Fonts().Face(config.MenuTitleFontSizeDesktop), color.White)
	s.title.AnchorX, s.title.AnchorY = 0.5, 0.5
	s.root.AddChild(s.title)

	for _, e := range entries {
		b := ui.NewButton(env.Assets, e.Label, ui.DefaultButtonStyle())
		s.root.AddChild(b.Node)
		s.buttons = append(s.buttons, b)
	}
	return s
}

// Label implements scene.Scene.
func (s *Scene) Label() string {
	return Label
}

// Buttons returns the task buttons in menu order.
func (s *Scene) Buttons() []*ui.Button {
	return s.buttons
}

// Update implements scene.Scene. A click replaces the menu with a fresh
// task scene.
func (s *Scene) Update(dt float64) {
	for i, b := range s.buttons {
		if b.Update(s.env.Input) {
			s.env.Nav.GoToScene(s.entries[i].New(s.env))
			return
		}
	}
}

// OnResize implements scene.Scene. The title and buttons form one column
// centered on the viewport.
func (s *Scene) OnResize(width, height float64) {
	spacing := float64(spacingDesktop)
	size := float64(config.MenuTitleFontSizeDesktop)
	if config.IsMobile(width) {
		spacing = spacingMobile
		size = config.MenuTitleFontSizeMobile
	}
	s.title.Face = s.env.Assets.Fonts().Face(size)

	s.root.X = width / 2
	s.root.Y = height / 2

	top := -spacing * float64(len(s.buttons)) / 2
	s.title.Y = top
	for i, b := range s.buttons {
		b.SetPosition(0, top+float64(i+1)*spacing)
	}
}

// Draw implements scene.Scene.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.root.Draw(screen)
}

// Dispose implements scene.Scene.
func (s *Scene) Dispose() {
	s.root.Dispose()
}
