// Package scene defines the Scene interface for full-screen units.
//
// The menu and each task implement Scene. A scene owns its visual tree and
// every animation it starts; Dispose releases both.
package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/system"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
)

// Scene represents one full-screen interactive unit (menu or task).
//
// The scene manager owns the active scene exclusively. After Dispose
// returns no further Update, OnResize or Draw call reaches the scene.
type Scene interface {
	// Label is the display name. The manager compares it to the menu
	// label to decide whether the back control is shown.
	Label() string

	// Update advances the scene by dt seconds.
	Update(dt float64)

	// OnResize repositions content for a new viewport without touching
	// simulation or sequencing state.
	OnResize(width, height float64)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Dispose cancels outstanding animations and releases the visual tree.
	Dispose()
}

// Navigator performs scene transitions.
type Navigator interface {
	GoToScene(next Scene)
}

// Env bundles what scene constructors receive.
type Env struct {
	Nav    Navigator
	Assets *assets.Cache
	Input  *system.InputSystem
	Config *config.AppConfig
	Rand   *rand.Rand
}
