package dialogue

// Advance is the outcome of one Sequencer.Next call.
type Advance[H comparable] struct {
	// Step is nil once the sequence has ended.
	Step *Step[H]
	// First is true only for the very first call.
	First bool
}

// End reports whether the sequence has been exhausted.
func (a Advance[H]) End() bool {
	return a.Step == nil
}

// Sequencer walks steps forward with a monotonic cursor. It never loops
// or rewinds; calls past the end keep returning the end marker.
type Sequencer[H comparable] struct {
	steps   []Step[H]
	cursor  int
	started bool
}

// NewSequencer creates a sequencer over steps.
func NewSequencer[H comparable](steps []Step[H]) *Sequencer[H] {
	return &Sequencer[H]{steps: steps}
}

// Next shows the step at the cursor and moves the cursor forward.
func (s *Sequencer[H]) Next() Advance[H] {
	adv := Advance[H]{First: !s.started}
	s.started = true
	if s.cursor < len(s.steps) {
		adv.Step = &s.steps[s.cursor]
		s.cursor++
	}
	return adv
}

// Cursor returns the index of the next step to show.
func (s *Sequencer[H]) Cursor() int {
	return s.cursor
}

// Len returns the number of steps.
func (s *Sequencer[H]) Len() int {
	return len(s.steps)
}
