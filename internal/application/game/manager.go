package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/ui"
)

// BackLabel is the text of the persistent back control.
const BackLabel = "← Back to Menu"

// MenuFactory builds a fresh menu scene. It is injected so this package
// does not import the menu, which itself imports every task scene.
type MenuFactory func(env *scene.Env) scene.Scene

// Manager owns the active scene and mediates transitions.
type Manager struct {
	env       *scene.Env
	newMenu   MenuFactory
	menuLabel string

	current scene.Scene
	width   float64
	height  float64
	back    *ui.Button
}

// NewManager creates a manager and registers it as env's navigator.
// menuLabel is compared with each new scene's label to decide whether
// the back control is shown.
func NewManager(env *scene.Env, menuLabel string, newMenu MenuFactory) *Manager {
	style := ui.DefaultButtonStyle()
	style.Width = 200
	style.Height = 50
	style.FontSize = 20

	m := &Manager{
		env:       env,
		newMenu:   newMenu,
		menuLabel: menuLabel,
		back:      ui.NewButton(env.Assets, BackLabel, style),
	}
	m.back.Node.Visible = false
	env.Nav = m
	return m
}

// GoToScene disposes the active scene, installs next and lays it out for
// the current viewport.
func (m *Manager) GoToScene(next scene.Scene) {
	prev := m.current
	if prev != nil {
		prev.Dispose()
	}
	m.current = next
	if next == nil {
		m.back.Node.Visible = false
		return
	}

	from := "<none>"
	if prev != nil {
		from = prev.Label()
	}
	log.Printf("[SceneManager] %s -> %s", from, next.Label())

	next.OnResize(m.width, m.height)
	m.back.Node.Visible = next.Label() != m.menuLabel
}

// GoToMenu transitions to a new menu scene.
func (m *Manager) GoToMenu() {
	m.GoToScene(m.newMenu(m.env))
}

// Current returns the active scene, or nil.
func (m *Manager) Current() scene.Scene {
	return m.current
}

// BackVisible reports whether the back control is shown.
func (m *Manager) BackVisible() bool {
	return m.back.Node.Visible
}

// Viewport returns the last size passed to Resize.
func (m *Manager) Viewport() (width, height float64) {
	return m.width, m.height
}

// Update handles the back control, then forwards to the active scene.
func (m *Manager) Update(dt float64) {
	if m.back.Update(m.env.Input) {
		m.GoToMenu()
		return
	}
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Resize stores the viewport and forwards it to the active scene.
func (m *Manager) Resize(width, height float64) {
	m.width, m.height = width, height
	m.back.SetPosition(width/2, height-80)
	if m.current != nil {
		m.current.OnResize(width, height)
	}
}

// Draw renders the active scene with the back control above it.
func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
	m.back.Node.Draw(screen)
}
