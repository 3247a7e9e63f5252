// Package state names the lifecycle phases of the game loop.
package state

// LoopState represents where the game loop is in its lifecycle
type LoopState int

const (
	StateStarting LoopState = iota
	StateRunning
	StateSwitching
	StateStopped
)

// String returns the string representation of the loop state
func (s LoopState) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateSwitching:
		return "Switching"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
