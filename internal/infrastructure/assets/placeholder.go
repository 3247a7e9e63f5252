package assets

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Starfield draws stars scattered over a transparent w x h image.
// The same seed always yields the same field.
func Starfield(w, h, stars int, seed int64, brightness uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < stars; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		v := uint8(int(brightness)/2 + rng.Intn(int(brightness)/2+1))
		img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 0xff})
	}
	return img
}

var (
	colorHull  = color.RGBA{180, 190, 210, 255}
	colorFlame = color.RGBA{255, 160, 40, 255}
)

// ShipSheet draws a cols x rows sheet of ship frames, each fw x fh.
// Rows tilt the nose up, level and down; columns draw a normal, long and
// short exhaust flame.
func ShipSheet(cols, rows, fw, fh int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*fw, rows*fh))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ox, oy := col*fw, row*fh
			tilt := (row - 1) * fh / 6

			tail := fw / 4
			nose := point{ox + fw - 1, oy + fh/2 + tilt}
			top := point{ox + tail, oy + fh/6}
			bottom := point{ox + tail, oy + fh - 1 - fh/6}
			fillTriangle(img, nose, top, bottom, colorHull)

			flame := tail / 2
			switch col % 3 {
			case 1:
				flame = tail
			case 2:
				flame = tail / 4
			}
			for x := ox + tail - flame; x < ox+tail; x++ {
				for y := oy + fh/2 - 2; y <= oy+fh/2+2; y++ {
					img.SetRGBA(x, y, colorFlame)
				}
			}
		}
	}
	return img
}

type point struct{ x, y int }

// fillTriangle fills the triangle abc, testing each pixel in its bounding box
func fillTriangle(img *image.RGBA, a, b, c point, clr color.RGBA) {
	minX, maxX := min(a.x, b.x, c.x), max(a.x, b.x, c.x)
	minY, maxY := min(a.y, b.y, c.y), max(a.y, b.y, c.y)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := point{x, y}
			d1 := edge(p, a, b)
			d2 := edge(p, b, c)
			d3 := edge(p, c, a)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

func edge(p, a, b point) int {
	return (p.x-b.x)*(a.y-b.y) - (a.x-b.x)*(p.y-b.y)
}

// starLayer describes the placeholder drawn for one background layer
type starLayer struct {
	stars      int
	brightness uint8
}

// UsePlaceholders registers generated stand-ins for every configured image:
// a star field per background layer, sized to the window, and a ship sheet
// matching the configured frame grid.
func (l *Library) UsePlaceholders(cfg *config.Config) {
	w, h := cfg.Window.Width, cfg.Window.Height
	layers := []struct {
		path string
		starLayer
	}{
		{cfg.Backgrounds.Back.Path, starLayer{stars: 300, brightness: 120}},
		{cfg.Backgrounds.Middle.Path, starLayer{stars: 150, brightness: 190}},
		{cfg.Backgrounds.Front.Path, starLayer{stars: 60, brightness: 255}},
	}
	for i, layer := range layers {
		seed := int64(i + 1)
		sl := layer.starLayer
		l.RegisterPlaceholder(layer.path, func() image.Image {
			return Starfield(w, h, sl.stars, seed, sl.brightness)
		})
	}

	s := cfg.Ship
	l.RegisterPlaceholder(s.Sheet, func() image.Image {
		return ShipSheet(s.Cols, s.Rows, int(s.FrameWidth), int(s.FrameHeight))
	})
}
