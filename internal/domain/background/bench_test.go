package background

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arcade/internal/domain/sprite"
)

// Per-frame cost of a full three-layer set at the default window size

func BenchmarkSet_Advance(b *testing.B) {
	img := sprite.New(ebiten.NewImage(256, 192))
	set := NewSet(img, img, img, DefaultVelocities())
	for n := 0; n < b.N; n++ {
		set.Advance(1.0 / 60)
	}
}

func BenchmarkBackground_Tiles(b *testing.B) {
	bg := New(sprite.New(ebiten.NewImage(256, 192)), DefaultBackVel)
	bg.Pos = 100
	for n := 0; n < b.N; n++ {
		_ = bg.Tiles(800, 600)
	}
}

func BenchmarkSet_Draw(b *testing.B) {
	img := sprite.New(ebiten.NewImage(256, 192))
	set := NewSet(img, img, img, DefaultVelocities())
	canvas := &countingCanvas{bounds: image.Rect(0, 0, 800, 600)}
	for n := 0; n < b.N; n++ {
		set.Draw(canvas)
	}
}
