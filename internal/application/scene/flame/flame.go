// Package flame implements the particle task: a small pooled fire.
package flame

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/domain/fire"
	"github.com/younwookim/taskshow/internal/render"
)

// Label is the scene label shown as title and on the menu.
const Label = "Task 3: Phoenix Flame"

// Scene is the fire task. Each pooled particle owns one glow sprite for
// the lifetime of the scene.
type Scene struct {
	*scene.TaskBase

	pool    *fire.Pool
	emitter *render.Node
	sprites []*render.Node
}

// New creates the pool with every particle dormant.
func New(env *scene.Env) *Scene {
	fc := env.Config.Fire
	cfg := fire.DefaultConfig()
	cfg.Size = fc.PoolSize
	cfg.Stagger = fc.StaggerSec

	s := &Scene{
		TaskBase: scene.NewTaskBase(env, Label),
		pool:     fire.NewPool(cfg, env.Rand),
		emitter:  render.NewContainer("emitter"),
	}
	s.pool.OriginY = fc.OriginY

	glow := env.Assets.Glow()
	s.sprites = make([]*render.Node, s.pool.Len())
	for i := range s.sprites {
		sp := render.NewSprite("particle", glow)
		sp.CenterPivot()
		sp.Blend = ebiten.BlendLighter
		sp.Visible = false
		s.emitter.AddChild(sp)
		s.sprites[i] = sp
	}
	s.Content.AddChild(s.emitter)
	return s
}

// Pool exposes the simulation.
func (s *Scene) Pool() *fire.Pool {
	return s.pool
}

// Update implements scene.Scene.
func (s *Scene) Update(dt float64) {
	s.Runner.Update(dt)
	s.pool.Update(dt)
	s.sync()
}

// OnResize implements scene.Scene. The emitter follows the content center.
func (s *Scene) OnResize(width, height float64) {
	s.Layout(width, height)
}

// sync copies particle state onto the sprites.
func (s *Scene) sync() {
	for i, sp := range s.sprites {
		p := s.pool.At(i)
		sp.Visible = p.Active
		if !p.Active {
			continue
		}
		sp.X, sp.Y = p.X, p.Y
		sp.SetScale(p.Scale)
		sp.Alpha = p.Alpha
		sp.Tint = p.Tint
	}
}
