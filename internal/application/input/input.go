// Package input turns keyboard state into a per-frame snapshot for views.
package input

import "github.com/younwookim/arcade/internal/domain/ship"

// State is the input seen by a view during one frame.
// Held keys stay true while down; the *Pressed fields are true only on the
// frame the key went down.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	UpPressed      bool
	DownPressed    bool
	EscapePressed  bool
	ConfirmPressed bool

	// Quit is set when the window is asked to close
	Quit bool
}

// Steering returns the held direction keys
func (s State) Steering() ship.Steering {
	return ship.Steering{Up: s.Up, Down: s.Down, Left: s.Left, Right: s.Right}
}

// Source produces one State per frame
type Source interface {
	Poll() State
}

// SourceFunc adapts a function to Source
type SourceFunc func() State

// Poll calls f
func (f SourceFunc) Poll() State {
	return f()
}

// Merge folds a later poll into s. Held keys take the later value; presses
// and quit requests from either poll are kept, so an edge seen on a skipped
// frame still reaches the next frame that runs.
func (s State) Merge(later State) State {
	return State{
		Up:    later.Up,
		Down:  later.Down,
		Left:  later.Left,
		Right: later.Right,

		UpPressed:      s.UpPressed || later.UpPressed,
		DownPressed:    s.DownPressed || later.DownPressed,
		EscapePressed:  s.EscapePressed || later.EscapePressed,
		ConfirmPressed: s.ConfirmPressed || later.ConfirmPressed,

		Quit: s.Quit || later.Quit,
	}
}
