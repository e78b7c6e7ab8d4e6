package anim

// CadenceState is the state of a Cadence timer.
type CadenceState int

const (
	// AwaitingFirstTrigger fires on the very next tick.
	AwaitingFirstTrigger CadenceState = iota
	// AwaitingInterval fires once a full interval has elapsed.
	AwaitingInterval
)

// String returns the string representation of the state
func (s CadenceState) String() string {
	switch s {
	case AwaitingFirstTrigger:
		return "AwaitingFirstTrigger"
	case AwaitingInterval:
		return "AwaitingInterval"
	default:
		return "Unknown"
	}
}

// Cadence fires immediately, then every interval, for as long as it is ticked.
type Cadence struct {
	interval float64
	elapsed  float64
	state    CadenceState
}

// NewCadence creates a cadence with the given interval in seconds.
func NewCadence(interval float64) *Cadence {
	return &Cadence{interval: interval}
}

// Tick advances the timer by dt and reports whether it fired.
// At most one trigger is reported per tick.
func (c *Cadence) Tick(dt float64) bool {
	switch c.state {
	case AwaitingFirstTrigger:
		c.state = AwaitingInterval
		c.elapsed = 0
		return true
	case AwaitingInterval:
		c.elapsed += dt
		if c.elapsed >= c.interval {
			c.elapsed -= c.interval
			return true
		}
	}
	return false
}

// State returns the current state.
func (c *Cadence) State() CadenceState {
	return c.state
}
