package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/anim"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
	"github.com/younwookim/taskshow/internal/render"
)

// TaskBase is embedded by task scenes. It provides the title, a content
// node kept at the viewport center, and the scene's animation runner.
type TaskBase struct {
	Env     *Env
	Root    *render.Node
	Title   *render.Node
	Content *render.Node
	Runner  *anim.Runner

	label    string
	width    float64
	height   float64
	disposed bool
}

// NewTaskBase creates the shared scaffolding of a task scene.
func NewTaskBase(env *Env, label string) *TaskBase {
	b := &TaskBase{
		Env:     env,
		Root:    render.NewContainer(label),
		Content: render.NewContainer("content"),
		Runner:  anim.NewRunner(),
		label:   label,
	}
	b.Title = render.NewText("title", label,
		env.Assets.Fonts().Face(config.TitleFontSizeDesktop), color.White)
	b.Title.AnchorX, b.Title.AnchorY = 0.5, 0.5

	b.Root.AddChild(b.Content)
	b.Root.AddChild(b.Title)
	return b
}

// Label implements Scene.
func (b *TaskBase) Label() string {
	return b.label
}

// Layout stores the viewport and places the title and content node.
// Task scenes call it from OnResize before positioning their own content.
func (b *TaskBase) Layout(width, height float64) {
	b.width, b.height = width, height

	size := float64(config.TitleFontSizeDesktop)
	if config.IsMobile(width) {
		size = config.TitleFontSizeMobile
	}
	b.Title.Face = b.Env.Assets.Fonts().Face(size)
	b.Title.X = width / 2
	b.Title.Y = config.TitleYOffset

	b.Content.X = width / 2
	b.Content.Y = height / 2
}

// Viewport returns the size passed to the last Layout call.
func (b *TaskBase) Viewport() (width, height float64) {
	return b.width, b.height
}

// Draw implements Scene.
func (b *TaskBase) Draw(screen *ebiten.Image) {
	b.Root.Draw(screen)
}

// Dispose implements Scene. It cancels every animation started through
// Runner, then disposes the visual tree. Calling it twice is a no-op.
func (b *TaskBase) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.Runner.CancelAll()
	b.Root.Dispose()
}

// Disposed reports whether Dispose has run.
func (b *TaskBase) Disposed() bool {
	return b.disposed
}
