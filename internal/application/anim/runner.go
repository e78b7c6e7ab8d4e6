package anim

// Handle is the cancellation token of a running animation.
type Handle struct {
	cancelled bool
	done      bool
}

// Cancel stops the animation before its next update. Cancelling a finished
// animation is a no-op.
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Active reports whether the animation is still running.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && !h.done
}

type entry struct {
	anim   Animation
	handle *Handle
}

// Runner owns a set of animations and advances them each frame.
type Runner struct {
	entries []entry
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Play registers an animation and returns its cancellation token.
func (r *Runner) Play(a Animation) *Handle {
	h := &Handle{}
	r.entries = append(r.entries, entry{anim: a, handle: h})
	return h
}

// Update advances every live animation by dt seconds. Animations started
// from inside a callback begin on the next update.
func (r *Runner) Update(dt float64) {
	n := len(r.entries)
	for i := 0; i < n && i < len(r.entries); i++ {
		e := r.entries[i]
		if e.handle.cancelled {
			continue
		}
		if e.anim.Update(dt) {
			e.handle.done = true
		}
	}

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.handle.Active() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry{}
	}
	r.entries = kept
}

// CancelAll cancels every registered animation.
func (r *Runner) CancelAll() {
	for _, e := range r.entries {
		e.handle.Cancel()
	}
	r.entries = nil
}

// Len returns the number of live animations.
func (r *Runner) Len() int {
	count := 0
	for _, e := range r.entries {
		if e.handle.Active() {
			count++
		}
	}
	return count
}
