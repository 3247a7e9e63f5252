// Package background implements horizontally scrolling, repeating layers.
package background

import (
	"math"

	"github.com/younwookim/arcade/internal/domain/geom"
	"github.com/younwookim/arcade/internal/domain/sprite"
)

// Background is one parallax layer.
// Pos is the scroll offset in sprite pixels and always stays in [0, sprite width).
type Background struct {
	Pos    float64
	Vel    float64
	Sprite sprite.Sprite
}

// New creates a layer scrolling at vel sprite pixels per second
func New(s sprite.Sprite, vel float64) Background {
	return Background{Vel: vel, Sprite: s}
}

// Advance scrolls the layer by elapsed seconds
func (b *Background) Advance(elapsed float64) {
	w, _ := b.Sprite.Size()
	b.Pos += b.Vel * elapsed
	if w <= 0 {
		b.Pos = 0
		return
	}
	b.Pos = math.Mod(b.Pos, w)
	if b.Pos < 0 {
		b.Pos += w
	}
}

// Tiles returns the destination rectangles covering a winW x winH output.
// The sprite is scaled to the output height and repeated to the right.
func (b *Background) Tiles(winW, winH float64) []geom.Rect {
	w, h := b.Sprite.Size()
	if w <= 0 || h <= 0 || winW <= 0 || winH <= 0 {
		return nil
	}

	scale := winH / h
	tileW := w * scale

	var tiles []geom.Rect
	for left := -b.Pos * scale; left < winW; left += tileW {
		tiles = append(tiles, geom.Rect{X: left, Y: 0, W: tileW, H: winH})
	}
	return tiles
}

// Draw renders the layer across the whole canvas
func (b *Background) Draw(dst sprite.Canvas) {
	bounds := dst.Bounds()
	for _, tile := range b.Tiles(float64(bounds.Dx()), float64(bounds.Dy())) {
		b.Sprite.Render(dst, tile)
	}
}
