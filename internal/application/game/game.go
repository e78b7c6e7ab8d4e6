// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/system"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
	"github.com/younwookim/taskshow/internal/ui"
)

// Game implements ebiten.Game on top of a Manager.
type Game struct {
	manager *Manager
	input   *system.InputSystem
	fps     *ui.FPSCounter
	display config.DisplayConfig

	dt      float64
	screenW int
	screenH int

	fullscreenRequested bool

	// Replaced in tests.
	setFullscreen func(bool)
	actualFPS     func() float64
}

// New creates a Game. fps may be nil to hide the readout.
func New(manager *Manager, input *system.InputSystem, fps *ui.FPSCounter, display config.DisplayConfig) *Game {
	dt := 1.0 / 60.0
	if display.TPS > 0 {
		dt = 1.0 / float64(display.TPS)
	}
	return &Game{
		manager:       manager,
		input:         input,
		fps:           fps,
		display:       display,
		dt:            dt,
		setFullscreen: ebiten.SetFullscreen,
		actualFPS:     ebiten.ActualFPS,
	}
}

// Update polls input and advances the active scene.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.input.Poll()

	// Fullscreen is requested once, on the first click anywhere.
	if g.display.FullscreenOnClick && !g.fullscreenRequested && g.input.Pointer().JustPressed {
		g.fullscreenRequested = true
		g.setFullscreen(true)
	}

	g.manager.Update(g.dt)

	if g.fps != nil {
		g.fps.Push(g.actualFPS())
	}
	return nil
}

// Draw renders the background, the active scene and the FPS readout.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(assets.RGB(g.display.Background))
	g.manager.Draw(screen)
	if g.fps != nil {
		g.fps.Node.Draw(screen)
	}
}

// Layout uses the outside size as the logical screen and forwards size
// changes to the manager.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.manager.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
