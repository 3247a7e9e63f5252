// Package ship holds the player ship: steering, movement bounds and the
// sprite frame that matches the current direction of travel.
package ship

import (
	"math"

	"github.com/younwookim/arcade/internal/domain/geom"
	"github.com/younwookim/arcade/internal/domain/sprite"
)

// Sheet layout and movement defaults
const (
	FrameWidth      = 43.0
	FrameHeight     = 39.0
	SheetCols       = 3
	SheetRows       = 3
	DefaultSpeed    = 180.0
	DefaultStartX   = 64.0
	DefaultStartY   = 64.0
	MovableFraction = 0.7
)

// Frame indexes a cell of the ship sheet
type Frame int

// Rows are up/mid/down, columns are normal/fast/slow
const (
	UpNorm Frame = iota
	UpFast
	UpSlow
	MidNorm
	MidFast
	MidSlow
	DownNorm
	DownFast
	DownSlow
)

// String returns the string representation of the frame
func (f Frame) String() string {
	switch f {
	case UpNorm:
		return "UpNorm"
	case UpFast:
		return "UpFast"
	case UpSlow:
		return "UpSlow"
	case MidNorm:
		return "MidNorm"
	case MidFast:
		return "MidFast"
	case MidSlow:
		return "MidSlow"
	case DownNorm:
		return "DownNorm"
	case DownFast:
		return "DownFast"
	case DownSlow:
		return "DownSlow"
	default:
		return "Unknown"
	}
}

// Steering is the set of held direction keys
type Steering struct {
	Up, Down, Left, Right bool
}

// Displacement returns how far the ship moves this frame.
// Opposite keys cancel out. Diagonal travel is scaled by 1/sqrt(2) so the
// ship is no faster diagonally than along an axis.
func Displacement(s Steering, speed, elapsed float64) (dx, dy float64) {
	horizontal := s.Left != s.Right
	vertical := s.Up != s.Down

	moved := speed * elapsed
	if horizontal && vertical {
		moved /= math.Sqrt2
	}

	if horizontal {
		if s.Left {
			dx = -moved
		} else {
			dx = moved
		}
	}
	if vertical {
		if s.Up {
			dy = -moved
		} else {
			dy = moved
		}
	}
	return dx, dy
}

// FrameFor picks the sheet cell for a displacement
func FrameFor(dx, dy float64) Frame {
	row := MidNorm
	switch {
	case dy < 0:
		row = UpNorm
	case dy > 0:
		row = DownNorm
	}

	switch {
	case dx > 0:
		return row + 1
	case dx < 0:
		return row + 2
	default:
		return row
	}
}

// MovableRegion is the part of the output the ship may occupy
func MovableRegion(winW, winH, fraction float64) geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: winW * fraction, H: winH}
}

// Ship is the player's ship
type Ship struct {
	Rect    geom.Rect
	Frames  []sprite.Sprite
	Current Frame
}

// New creates a ship at (x, y) sized to one frame
func New(frames []sprite.Sprite, x, y float64) *Ship {
	return &Ship{
		Rect:    geom.Rect{X: x, Y: y, W: FrameWidth, H: FrameHeight},
		Frames:  frames,
		Current: MidNorm,
	}
}

// Move translates the ship, keeps it inside bounds and updates the frame.
// A ship larger than bounds is moved without clamping.
func (s *Ship) Move(dx, dy float64, bounds geom.Rect) {
	s.Rect = s.Rect.Translate(dx, dy)
	if clamped, ok := s.Rect.MoveInside(bounds); ok {
		s.Rect = clamped
	}
	s.Current = FrameFor(dx, dy)
}

// Sprite returns the frame to draw, or false if the sheet lacks it
func (s *Ship) Sprite() (sprite.Sprite, bool) {
	i := int(s.Current)
	if i < 0 || i >= len(s.Frames) {
		return sprite.Sprite{}, false
	}
	return s.Frames[i], true
}
