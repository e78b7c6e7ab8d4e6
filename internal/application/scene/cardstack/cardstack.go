// Package cardstack implements the card migration task: a shuffled deck
// moves one card at a time from stack A to stack B.
package cardstack

import (
	"log"
	"math"

	"github.com/tanema/gween/ease"
	"github.com/younwookim/taskshow/internal/application/anim"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/domain/cards"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
	"github.com/younwookim/taskshow/internal/render"
	"github.com/younwookim/taskshow/internal/ui"
)

// Label is the scene label shown as title and on the menu.
const Label = "Task 1: Ace of Shadows"

// flight is a card travelling through the transit layer. Progress runs
// from 0 to 1; the target is re-read every frame so a resize during the
// flight does not make the card jump on landing.
type flight struct {
	card     cards.Card
	node     *render.Node
	fromX    float64
	fromY    float64
	progress float64
	scale    float64
}

// Scene is the card migration task.
type Scene struct {
	*scene.TaskBase

	cfg     config.CardsConfig
	table   *cards.Table
	cadence *anim.Cadence

	stackA  *render.Node
	stackB  *render.Node
	transit *render.Node
	visuals map[int]*render.Node
	flights map[int]*flight
}

// New deals a shuffled deck into stack A.
func New(env *scene.Env) *Scene {
	cfg := env.Config.Cards
	s := &Scene{
		TaskBase: scene.NewTaskBase(env, Label),
		cfg:      cfg,
		cadence:  anim.NewCadence(cfg.IntervalSec),
		stackA:   render.NewContainer("stack-a"),
		stackB:   render.NewContainer("stack-b"),
		transit:  render.NewContainer("transit"),
		visuals:  make(map[int]*render.Node, cfg.Count),
		flights:  make(map[int]*flight),
	}

	deck := cards.NewDeck(cfg.Count)
	cards.Shuffle(deck, env.Rand)
	s.table = cards.NewTable(deck)

	jitter := cfg.JitterDeg * math.Pi / 180
	for _, c := range deck {
		n := ui.NewCard(env.Assets, c)
		n.Rotation = (env.Rand.Float64()*2 - 1) * jitter
		s.stackA.AddChild(n)
		s.visuals[c.Index] = n
	}

	// Transit goes last so flying cards draw above both stacks.
	s.Content.AddChild(s.stackA)
	s.Content.AddChild(s.stackB)
	s.Content.AddChild(s.transit)
	return s
}

// Update implements scene.Scene.
func (s *Scene) Update(dt float64) {
	s.Runner.Update(dt)
	s.applyFlights()

	if s.cadence.Tick(dt) {
		s.migrate()
	}
}

// OnResize implements scene.Scene. Only the stack anchors move.
func (s *Scene) OnResize(width, height float64) {
	s.Layout(width, height)

	if config.IsMobile(width) {
		s.stackA.X, s.stackA.Y = 0, s.cfg.PortraitTop
		s.stackB.X, s.stackB.Y = 0, s.cfg.PortraitBot
	} else {
		s.stackA.X, s.stackA.Y = -s.cfg.StackOffset, 0
		s.stackB.X, s.stackB.Y = s.cfg.StackOffset, 0
	}
	s.applyFlights()
}

// Counts returns the sizes of stack A, transit and stack B.
func (s *Scene) Counts() (a, transit, b int) {
	return s.table.Counts()
}

// migrate lifts the top card of stack A into the transit layer and
// starts its flight. It is a no-op once stack A is empty.
func (s *Scene) migrate() {
	c, ok := s.table.Lift()
	if !ok {
		return
	}
	n := s.visuals[c.Index]

	// Keep the on-screen position across the reparent.
	gx, gy := s.stackA.ToGlobal(n.X, n.Y)
	s.transit.AddChild(n)
	n.X, n.Y = s.transit.ToLocal(gx, gy)

	f := &flight{card: c, node: n, fromX: n.X, fromY: n.Y, scale: 1}
	s.flights[c.Index] = f

	travel := s.cfg.TravelSec
	third := travel / 3
	s.Runner.Play(anim.Seq(
		anim.Par(
			anim.To(&f.progress, 1, travel, ease.Linear),
			anim.Seq(
				anim.To(&f.scale, s.cfg.LiftScale, third, ease.OutQuad),
				anim.Delay(third),
				anim.To(&f.scale, 1, third, ease.InQuad),
			),
		),
		anim.Call(func() { s.land(f) }),
	))
}

// land moves a finished flight onto stack B at its local origin.
func (s *Scene) land(f *flight) {
	delete(s.flights, f.card.Index)
	if err := s.table.Land(f.card); err != nil {
		log.Printf("[CardStack] %v", err)
		return
	}
	s.stackB.AddChild(f.node)
	f.node.X, f.node.Y = 0, 0
	f.node.SetScale(1)
}

// applyFlights positions every flying card between its start and the
// current origin of stack B.
func (s *Scene) applyFlights() {
	toX := s.stackB.X - s.transit.X
	toY := s.stackB.Y - s.transit.Y
	for _, f := range s.flights {
		f.node.X = f.fromX + (toX-f.fromX)*f.progress
		f.node.Y = f.fromY + (toY-f.fromY)*f.progress
		f.node.SetScale(f.scale)
	}
}
