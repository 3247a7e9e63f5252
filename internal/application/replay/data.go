// Package replay records polled input to JSON and plays it back as an input source.
package replay

import "github.com/younwookim/arcade/internal/application/input"

// Version is written to every recording
const Version = "1.1"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	Dt float64 `json:"dt"`           // Seconds since the previous frame
	U  bool    `json:"u,omitempty"`  // Up held
	D  bool    `json:"d,omitempty"`  // Down held
	L  bool    `json:"l,omitempty"`  // Left held
	R  bool    `json:"r,omitempty"`  // Right held
	UP bool    `json:"up,omitempty"` // Up pressed
	DP bool    `json:"dp,omitempty"` // Down pressed
	E  bool    `json:"e,omitempty"`  // Escape pressed
	C  bool    `json:"c,omitempty"`  // Confirm pressed
	Q  bool    `json:"q,omitempty"`  // Quit requested
}

// Data contains all data needed to replay a session
type Data struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromState(f int, elapsed float64, s input.State) FrameInput {
	return FrameInput{
		F:  f,
		Dt: elapsed,
		U:  s.Up,
		D:  s.Down,
		L:  s.Left,
		R:  s.Right,
		UP: s.UpPressed,
		DP: s.DownPressed,
		E:  s.EscapePressed,
		C:  s.ConfirmPressed,
		Q:  s.Quit,
	}
}

func (fi FrameInput) state() input.State {
	return input.State{
		Up:             fi.U,
		Down:           fi.D,
		Left:           fi.L,
		Right:          fi.R,
		UpPressed:      fi.UP,
		DownPressed:    fi.DP,
		EscapePressed:  fi.E,
		ConfirmPressed: fi.C,
		Quit:           fi.Q,
	}
}
