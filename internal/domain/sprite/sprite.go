// Package sprite addresses sub-regions of shared textures.
//
// A Sprite is a small value: the texture pointer plus a source rectangle.
// Copies and regions share the texture, so a sheet is loaded once and sliced
// into as many sprites as needed.
package sprite

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arcade/internal/domain/geom"
)

var (
	// ErrOutOfBounds is returned when a region does not fit inside its sprite
	ErrOutOfBounds = errors.New("region out of bounds")
	// ErrBadGrid is returned for non-positive grid dimensions
	ErrBadGrid = errors.New("invalid grid dimensions")
)

// Canvas is the drawing surface sprites render to.
// *ebiten.Image satisfies it.
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
	Bounds() image.Rectangle
}

// Sprite is a rectangular region of a shared texture
type Sprite struct {
	tex *ebiten.Image
	src geom.Rect
}

// New creates a sprite covering the whole texture
func New(tex *ebiten.Image) Sprite {
	b := tex.Bounds()
	return Sprite{
		tex: tex,
		src: geom.Rect{
			X: float64(b.Min.X),
			Y: float64(b.Min.Y),
			W: float64(b.Dx()),
			H: float64(b.Dy()),
		},
	}
}

// Region returns the sub-sprite at r, given relative to this sprite's origin.
// The result shares the texture.
func (s Sprite) Region(r geom.Rect) (Sprite, error) {
	local := geom.Rect{W: s.src.W, H: s.src.H}
	if r.W < 0 || r.H < 0 || !local.Contains(r) {
		return Sprite{}, fmt.Errorf("%w: %+v in %vx%v", ErrOutOfBounds, r, s.src.W, s.src.H)
	}

	return Sprite{
		tex: s.tex,
		src: geom.Rect{X: s.src.X + r.X, Y: s.src.Y + r.Y, W: r.W, H: r.H},
	}, nil
}

// Size returns the width and height of the region
func (s Sprite) Size() (w, h float64) {
	return s.src.W, s.src.H
}

// Source returns the region in texture coordinates
func (s Sprite) Source() geom.Rect {
	return s.src
}

// Texture returns the shared texture
func (s Sprite) Texture() *ebiten.Image {
	return s.tex
}

// Render draws the region stretched over dest
func (s Sprite) Render(dst Canvas, dest geom.Rect) {
	if s.tex == nil {
		return
	}
	srcRect := s.src.Image()
	if srcRect.Empty() {
		return
	}

	sub := s.tex.SubImage(srcRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dest.W/float64(srcRect.Dx()), dest.H/float64(srcRect.Dy()))
	op.GeoM.Translate(dest.X, dest.Y)
	dst.DrawImage(sub, op)
}

// Grid slices sheet into rows*cols cells of cellW x cellH, row by row
func Grid(sheet Sprite, cols, rows int, cellW, cellH float64) ([]Sprite, error) {
	if cols <= 0 || rows <= 0 || cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of %vx%v", ErrBadGrid, cols, rows, cellW, cellH)
	}

	frames := make([]Sprite, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			frame, err := sheet.Region(geom.Rect{
				X: cellW * float64(x),
				Y: cellH * float64(y),
				W: cellW,
				H: cellH,
			})
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			frames = append(frames, frame)
		}
	}
	return frames, nil
}
