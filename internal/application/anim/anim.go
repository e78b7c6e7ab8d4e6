// Package anim drives tweens and timers from the per-frame update.
//
// Nothing here schedules callbacks on its own: every animation is advanced
// by an owning Runner, and a scene cancels its Runner on teardown so no
// callback fires against released visuals.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is advanced once per frame.
type Animation interface {
	// Update advances by dt seconds and reports whether it has finished.
	Update(dt float64) bool
}

// Tween animates a float64 field with a gween tween. The start value is
// read from the field when the tween first updates, so tweens composed in
// a Sequence start from wherever the previous step left the field.
type Tween struct {
	field    *float64
	from     float64
	hasFrom  bool
	to       float64
	duration float64
	fn       ease.TweenFunc
	tw       *gween.Tween
}

// To creates a tween of *field to the target value over duration seconds.
func To(field *float64, to, duration float64, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{field: field, to: to, duration: duration, fn: fn}
}

// From fixes the start value instead of reading the field.
func (t *Tween) From(v float64) *Tween {
	t.from = v
	t.hasFrom = true
	return t
}

// Update implements Animation.
func (t *Tween) Update(dt float64) bool {
	if t.duration <= 0 {
		*t.field = t.to
		return true
	}
	if t.tw == nil {
		start := *t.field
		if t.hasFrom {
			start = t.from
		}
		t.tw = gween.New(float32(start), float32(t.to), float32(t.duration), t.fn)
	}
	v, done := t.tw.Update(float32(dt))
	if done {
		*t.field = t.to
		return true
	}
	*t.field = float64(v)
	return false
}

// Sequence runs animations one after another.
type Sequence struct {
	steps []Animation
	idx   int
}

// Seq creates a sequence of steps.
func Seq(steps ...Animation) *Sequence {
	return &Sequence{steps: steps}
}

// Update implements Animation.
func (s *Sequence) Update(dt float64) bool {
	if s.idx >= len(s.steps) {
		return true
	}
	if s.steps[s.idx].Update(dt) {
		s.idx++
	}
	return s.idx >= len(s.steps)
}

// Parallel runs animations together and finishes when all have finished.
type Parallel struct {
	parts []Animation
	done  []bool
}

// Par creates a parallel group.
func Par(parts ...Animation) *Parallel {
	return &Parallel{parts: parts, done: make([]bool, len(parts))}
}

// Update implements Animation.
func (p *Parallel) Update(dt float64) bool {
	all := true
	for i, a := range p.parts {
		if p.done[i] {
			continue
		}
		if a.Update(dt) {
			p.done[i] = true
		} else {
			all = false
		}
	}
	return all
}

// Wait does nothing for a duration.
type Wait struct {
	duration float64
	elapsed  float64
}

// Delay creates a wait of d seconds.
func Delay(d float64) *Wait {
	return &Wait{duration: d}
}

// Update implements Animation.
func (w *Wait) Update(dt float64) bool {
	w.elapsed += dt
	return w.elapsed >= w.duration
}

// Func runs a callback once.
type Func func()

// Call wraps fn as an instant animation.
func Call(fn func()) Func {
	return Func(fn)
}

// Update implements Animation.
func (f Func) Update(float64) bool {
	f()
	return true
}
