package sprite

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/arcade/internal/domain/geom"
)

// recordingCanvas captures DrawImage calls
type recordingCanvas struct {
	bounds image.Rectangle
	calls  []drawCall
}

type drawCall struct {
	src image.Rectangle
	geo ebiten.GeoM
}

func (c *recordingCanvas) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	c.calls = append(c.calls, drawCall{src: img.Bounds(), geo: op.GeoM})
}

func (c *recordingCanvas) Bounds() image.Rectangle {
	return c.bounds
}

func TestNew_CoversTexture(t *testing.T) {
	s := New(ebiten.NewImage(129, 117))

	w, h := s.Size()
	assert.Equal(t, 129.0, w)
	assert.Equal(t, 117.0, h)
	assert.Equal(t, geom.Rect{W: 129, H: 117}, s.Source())
}

func TestSprite_Region(t *testing.T) {
	sheet := New(ebiten.NewImage(129, 117))

	t.Run("region shares texture", func(t *testing.T) {
		r, err := sheet.Region(geom.Rect{X: 43, Y: 39, W: 43, H: 39})
		require.NoError(t, err)

		assert.Same(t, sheet.Texture(), r.Texture())
		assert.Equal(t, geom.Rect{X: 43, Y: 39, W: 43, H: 39}, r.Source())
	})

	t.Run("nested region offsets accumulate", func(t *testing.T) {
		outer, err := sheet.Region(geom.Rect{X: 43, Y: 39, W: 86, H: 78})
		require.NoError(t, err)

		inner, err := outer.Region(geom.Rect{X: 43, Y: 0, W: 43, H: 39})
		require.NoError(t, err)

		assert.Equal(t, geom.Rect{X: 86, Y: 39, W: 43, H: 39}, inner.Source())
	})

	t.Run("region is checked against the sprite, not the texture", func(t *testing.T) {
		outer, err := sheet.Region(geom.Rect{X: 86, Y: 78, W: 43, H: 39})
		require.NoError(t, err)

		_, err = outer.Region(geom.Rect{X: 10, Y: 0, W: 43, H: 39})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := sheet.Region(geom.Rect{X: 100, Y: 0, W: 43, H: 39})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := sheet.Region(geom.Rect{X: 10, Y: 10, W: -5, H: 5})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestSprite_CopyKeepsSource(t *testing.T) {
	sheet := New(ebiten.NewImage(64, 64))
	r, err := sheet.Region(geom.Rect{X: 0, Y: 0, W: 32, H: 32})
	require.NoError(t, err)

	clone := r
	assert.Equal(t, r.Source(), clone.Source())
	assert.Same(t, r.Texture(), clone.Texture())
}

func TestSprite_Render(t *testing.T) {
	sheet := New(ebiten.NewImage(129, 117))
	frame, err := sheet.Region(geom.Rect{X: 43, Y: 78, W: 43, H: 39})
	require.NoError(t, err)

	canvas := &recordingCanvas{bounds: image.Rect(0, 0, 800, 600)}
	frame.Render(canvas, geom.Rect{X: 64, Y: 64, W: 86, H: 78})

	require.Len(t, canvas.calls, 1)
	call := canvas.calls[0]
	assert.Equal(t, image.Rect(43, 78, 86, 117), call.src)

	x0, y0 := call.geo.Apply(0, 0)
	assert.InDelta(t, 64, x0, 1e-9)
	assert.InDelta(t, 64, y0, 1e-9)

	x1, y1 := call.geo.Apply(43, 39)
	assert.InDelta(t, 150, x1, 1e-9)
	assert.InDelta(t, 142, y1, 1e-9)
}

func TestSprite_RenderZeroValue(t *testing.T) {
	canvas := &recordingCanvas{}
	Sprite{}.Render(canvas, geom.Rect{W: 10, H: 10})
	assert.Empty(t, canvas.calls)
}

func TestGrid(t *testing.T) {
	sheet := New(ebiten.NewImage(129, 117))

	frames, err := Grid(sheet, 3, 3, 43, 39)
	require.NoError(t, err)
	require.Len(t, frames, 9)

	got := make([]geom.Rect, len(frames))
	for i, f := range frames {
		got[i] = f.Source()
	}
	want := []geom.Rect{
		{X: 0, Y: 0, W: 43, H: 39}, {X: 43, Y: 0, W: 43, H: 39}, {X: 86, Y: 0, W: 43, H: 39},
		{X: 0, Y: 39, W: 43, H: 39}, {X: 43, Y: 39, W: 43, H: 39}, {X: 86, Y: 39, W: 43, H: 39},
		{X: 0, Y: 78, W: 43, H: 39}, {X: 43, Y: 78, W: 43, H: 39}, {X: 86, Y: 78, W: 43, H: 39},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid cells mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_Errors(t *testing.T) {
	sheet := New(ebiten.NewImage(100, 100))

	_, err := Grid(sheet, 0, 3, 10, 10)
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = Grid(sheet, 3, 3, 0, 10)
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = Grid(sheet, 3, 3, 40, 40)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
