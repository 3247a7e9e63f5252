// Package geom provides the floating point rectangle used for layout,
// sprite source regions and movement bounds.
package geom

import "image"

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Size returns the width and height
func (r Rect) Size() (w, h float64) {
	return r.W, r.H
}

// Right returns the X coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether other lies entirely inside r.
// Shared edges count as inside.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// MoveInside returns r shifted the least amount needed to sit inside parent.
// It returns false when r is wider or taller than parent.
func (r Rect) MoveInside(parent Rect) (Rect, bool) {
	if r.W > parent.W || r.H > parent.H {
		return r, false
	}

	moved := r
	switch {
	case r.X < parent.X:
		moved.X = parent.X
	case r.Right() >= parent.Right():
		moved.X = parent.Right() - r.W
	}
	switch {
	case r.Y < parent.Y:
		moved.Y = parent.Y
	case r.Bottom() >= parent.Bottom():
		moved.Y = parent.Bottom() - r.H
	}
	return moved, true
}

// Translate returns r moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Image converts r to an integer rectangle, truncating toward zero.
// Negative sizes collapse to an empty rectangle.
func (r Rect) Image() image.Rectangle {
	w, h := r.W, r.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	x0, y0 := int(r.X), int(r.Y)
	return image.Rect(x0, y0, x0+int(w), y0+int(h))
}
