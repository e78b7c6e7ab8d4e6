// Package state defines the setup states of scenes that load remote content.
package state

// LoadState represents how far a scene's asynchronous setup has progressed
type LoadState int

const (
	StateLoading LoadState = iota
	StateReady
	StateFailed
)

// String returns the string representation of the load state
func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Interactive reports whether pointer input should be handled in this state
func (s LoadState) Interactive() bool {
	return s == StateReady
}
