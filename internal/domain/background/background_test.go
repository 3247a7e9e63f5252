package background

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arcade/internal/domain/geom"
	"github.com/younwookim/arcade/internal/domain/sprite"
)

type countingCanvas struct {
	bounds image.Rectangle
	draws  int
}

func (c *countingCanvas) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) { c.draws++ }
func (c *countingCanvas) Bounds() image.Rectangle                             { return c.bounds }

func layer(w, h int, vel float64) Background {
	return New(sprite.New(ebiten.NewImage(w, h)), vel)
}

func TestBackground_Advance(t *testing.T) {
	t.Run("moves by velocity", func(t *testing.T) {
		bg := layer(200, 100, 40)
		bg.Advance(0.5)
		assert.InDelta(t, 20, bg.Pos, 1e-9)
	})

	t.Run("wraps past sprite width", func(t *testing.T) {
		bg := layer(200, 100, 60)
		bg.Pos = 190
		bg.Advance(0.5)
		assert.InDelta(t, 20, bg.Pos, 1e-9)
	})

	t.Run("wraps several widths in one step", func(t *testing.T) {
		bg := layer(100, 100, 1000)
		bg.Advance(0.35)
		assert.InDelta(t, 50, bg.Pos, 1e-9)
	})

	t.Run("negative velocity stays in range", func(t *testing.T) {
		bg := layer(100, 100, -20)
		bg.Advance(0.5)
		assert.InDelta(t, 90, bg.Pos, 1e-9)
	})

	t.Run("zero width sprite", func(t *testing.T) {
		bg := Background{Vel: 20}
		bg.Advance(1)
		assert.Equal(t, 0.0, bg.Pos)
	})
}

func TestBackground_Tiles(t *testing.T) {
	bg := layer(200, 300, 0)

	t.Run("covers the window from zero", func(t *testing.T) {
		tiles := bg.Tiles(800, 600)
		require.Len(t, tiles, 2)
		assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 400, H: 600}, tiles[0])
		assert.Equal(t, geom.Rect{X: 400, Y: 0, W: 400, H: 600}, tiles[1])
	})

	t.Run("offset adds a trailing tile", func(t *testing.T) {
		bg.Pos = 50
		tiles := bg.Tiles(800, 600)
		require.Len(t, tiles, 3)
		assert.Equal(t, -100.0, tiles[0].X)
		assert.Equal(t, 700.0, tiles[2].X)
		last := tiles[len(tiles)-1]
		assert.GreaterOrEqual(t, last.Right(), 800.0)
	})

	t.Run("degenerate output", func(t *testing.T) {
		assert.Empty(t, bg.Tiles(0, 600))
		assert.Empty(t, (&Background{}).Tiles(800, 600))
	})
}

func TestBackground_Draw(t *testing.T) {
	bg := layer(200, 300, 0)
	bg.Pos = 50

	canvas := &countingCanvas{bounds: image.Rect(0, 0, 800, 600)}
	bg.Draw(canvas)

	assert.Equal(t, 3, canvas.draws)
}

func TestSet_Defaults(t *testing.T) {
	img := sprite.New(ebiten.NewImage(100, 100))
	set := NewSet(img, img, img, DefaultVelocities())

	assert.Equal(t, 20.0, set.Back.Vel)
	assert.Equal(t, 40.0, set.Middle.Vel)
	assert.Equal(t, 60.0, set.Front.Vel)
	assert.Zero(t, set.Back.Pos)
}

func TestSet_CopyScrollsIndependently(t *testing.T) {
	img := sprite.New(ebiten.NewImage(1000, 100))
	original := NewSet(img, img, img, DefaultVelocities())
	original.Advance(1)

	handed := original
	assert.Equal(t, original, handed, "copy carries positions over")

	handed.Advance(1)
	assert.InDelta(t, 20, original.Back.Pos, 1e-9)
	assert.InDelta(t, 40, handed.Back.Pos, 1e-9)
	assert.InDelta(t, 120, handed.Front.Pos, 1e-9)
}

func TestSet_DrawOrder(t *testing.T) {
	img := sprite.New(ebiten.NewImage(800, 600))
	set := NewSet(img, img, img, DefaultVelocities())

	canvas := &countingCanvas{bounds: image.Rect(0, 0, 800, 600)}
	set.DrawBack(canvas)
	assert.Equal(t, 2, canvas.draws)

	set.DrawFront(canvas)
	assert.Equal(t, 3, canvas.draws)

	set.Draw(canvas)
	assert.Equal(t, 6, canvas.draws)
}
