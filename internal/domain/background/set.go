package background

import "github.com/younwookim/arcade/internal/domain/sprite"

// Default layer velocities in sprite pixels per second
const (
	DefaultBackVel   = 20.0
	DefaultMiddleVel = 40.0
	DefaultFrontVel  = 60.0
)

// Set is the three-layer star field shared by every view.
// It is a value: handing a copy to the next view carries the scroll
// positions over, and the copy then scrolls on its own.
type Set struct {
	Back   Background
	Middle Background
	Front  Background
}

// Velocities holds the speed of each layer
type Velocities struct {
	Back, Middle, Front float64
}

// DefaultVelocities returns 20, 40 and 60 px/s
func DefaultVelocities() Velocities {
	return Velocities{Back: DefaultBackVel, Middle: DefaultMiddleVel, Front: DefaultFrontVel}
}

// NewSet creates a set with every layer at position zero
func NewSet(back, middle, front sprite.Sprite, vel Velocities) Set {
	return Set{
		Back:   New(back, vel.Back),
		Middle: New(middle, vel.Middle),
		Front:  New(front, vel.Front),
	}
}

// Advance scrolls all three layers
func (s *Set) Advance(elapsed float64) {
	s.Back.Advance(elapsed)
	s.Middle.Advance(elapsed)
	s.Front.Advance(elapsed)
}

// DrawBack renders the layers behind the actors
func (s *Set) DrawBack(dst sprite.Canvas) {
	s.Back.Draw(dst)
	s.Middle.Draw(dst)
}

// DrawFront renders the layer in front of the actors
func (s *Set) DrawFront(dst sprite.Canvas) {
	s.Front.Draw(dst)
}

// Draw renders all layers back to front
func (s *Set) Draw(dst sprite.Canvas) {
	s.DrawBack(dst)
	s.DrawFront(dst)
}
