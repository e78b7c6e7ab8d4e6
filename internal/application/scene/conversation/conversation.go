// Package conversation implements the dialogue task: a remotely fetched
// script is played back one line per click.
package conversation

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/taskshow/internal/application/scene"
	"github.com/younwookim/taskshow/internal/application/state"
	"github.com/younwookim/taskshow/internal/domain/dialogue"
	"github.com/younwookim/taskshow/internal/infrastructure/remote"
	"github.com/younwookim/taskshow/internal/render"
	"github.com/younwookim/taskshow/internal/ui"
)

// Label is the scene label shown as title and on the menu.
const Label = "Task 2: Magic Words"

// UI strings.
const (
	HintStart   = "click to start"
	HintProceed = "click to proceed"
	EndText     = "The End"
	FailedText  = "Failed to load dialogue"
)

// Scene is the dialogue task.
type Scene struct {
	*scene.TaskBase

	cancel context.CancelFunc
	events chan loadEvent
	state  state.LoadState

	script  *dialogue.Script
	avatars map[string]*ebiten.Image
	emojis  map[string]*ebiten.Image
	owned   []*ebiten.Image
	seq     *dialogue.Sequencer[*ebiten.Image]

	left   *ui.DialoguePanel
	right  *ui.DialoguePanel
	status *render.Node
	hint   *render.Node
	end    *render.Node
}

// New creates the scene and starts loading the configured script.
func New(env *scene.Env) *Scene {
	cfg := env.Config.Dialogue
	timeout := time.Duration(cfg.TimeoutSec * float64(time.Second))
	return NewWithFetcher(env, remote.NewClient(cfg.ScriptURL, timeout))
}

// NewWithFetcher creates the scene and starts loading through f.
func NewWithFetcher(env *scene.Env, f Fetcher) *Scene {
	s := &Scene{
		TaskBase: scene.NewTaskBase(env, Label),
		events:   make(chan loadEvent, 8),
		state:    state.StateLoading,
		avatars:  make(map[string]*ebiten.Image),
		emojis:   make(map[string]*ebiten.Image),
	}

	fonts := env.Assets.Fonts()
	perRune := env.Config.Dialogue.RevealPerRune
	s.left = ui.NewDialoguePanel(env.Assets, s.Runner, dialogue.SideLeft, perRune)
	s.right = ui.NewDialoguePanel(env.Assets, s.Runner, dialogue.SideRight, perRune)

	s.status = render.NewText("status", "Loading...", fonts.Face(24), color.White)
	s.status.AnchorX, s.status.AnchorY = 0.5, 0.5

	s.hint = render.NewText("hint", HintStart, fonts.Face(20), color.RGBA{0xcc, 0xcc, 0xcc, 0xff})
	s.hint.AnchorX, s.hint.AnchorY = 0.5, 0.5
	s.hint.Visible = false

	s.end = render.NewText("end", EndText, fonts.Face(40), color.White)
	s.end.AnchorX, s.end.AnchorY = 0.5, 0.5
	s.end.Visible = false

	s.Content.AddChild(s.left.Node)
	s.Content.AddChild(s.right.Node)
	s.Content.AddChild(s.status)
	s.Content.AddChild(s.hint)
	s.Content.AddChild(s.end)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go load(ctx, f, s.events)
	return s
}

// State returns the load state.
func (s *Scene) State() state.LoadState {
	return s.state
}

// Update implements scene.Scene.
func (s *Scene) Update(dt float64) {
	s.drain()

	s.Runner.Update(dt)
	s.left.Update()
	s.right.Update()

	if !s.state.Interactive() {
		return
	}
	in := s.Env.Input
	if in.Pointer().JustPressed {
		in.Consume()
		s.advance()
	}
}

// OnResize implements scene.Scene.
func (s *Scene) OnResize(width, height float64) {
	s.Layout(width, height)

	margin := min(300, width/2-20)
	s.left.Node.X, s.left.Node.Y = -margin, -180
	s.right.Node.X, s.right.Node.Y = margin, -180
	s.hint.Y = height/2 - 150
}

// Dispose implements scene.Scene. It stops the loader and releases the
// downloaded images.
func (s *Scene) Dispose() {
	if s.Disposed() {
		return
	}
	s.cancel()
	s.TaskBase.Dispose()
	for _, img := range s.owned {
		img.Deallocate()
	}
	s.owned = nil
	clear(s.avatars)
	clear(s.emojis)
}

// drain applies every pending loader event without blocking.
func (s *Scene) drain() {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			s.apply(ev)
		default:
			return
		}
	}
}

func (s *Scene) apply(ev loadEvent) {
	switch {
	case ev.err != nil:
		log.Printf("[Dialogue] %v", ev.err)
		s.state = state.StateFailed
		s.status.Text = FailedText

	case ev.script != nil:
		s.script = ev.script
		s.setProgress(0, ev.total)

	case ev.finished:
		s.finish()

	default:
		if ev.img != nil {
			img := ebiten.NewImageFromImage(ev.img)
			s.owned = append(s.owned, img)
			if ev.asset.Kind == dialogue.AssetEmoji {
				s.emojis[ev.asset.Name] = img
			} else {
				s.avatars[ev.asset.Name] = img
			}
		}
		s.setProgress(ev.done, ev.total)
	}
}

func (s *Scene) setProgress(done, total int) {
	pct := 100
	if total > 0 {
		pct = done * 100 / total
	}
	s.status.Text = fmt.Sprintf("Loading... %d%%", pct)
}

// finish precomputes the steps and enables interaction.
func (s *Scene) finish() {
	steps := dialogue.BuildSteps(s.script, s.avatars, s.emojis, s.Env.Assets.Placeholder())
	s.seq = dialogue.NewSequencer(steps)
	s.state = state.StateReady
	s.status.Visible = false
	s.hint.Text = HintStart
	s.hint.Visible = true
}

// advance shows the next step, or the end marker once the script is done.
func (s *Scene) advance() {
	adv := s.seq.Next()
	if adv.First {
		s.hint.Text = HintProceed
	}

	if adv.End() {
		s.left.Hide()
		s.right.Hide()
		s.end.Visible = true
		s.hint.Visible = false
		return
	}

	shown, other := s.left, s.right
	if adv.Step.Side == dialogue.SideRight {
		shown, other = s.right, s.left
	}
	other.Hide()
	shown.Show(adv.Step)
}
