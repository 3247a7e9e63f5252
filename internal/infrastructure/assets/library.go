// Package assets loads textures from an fs.FS and renders text labels into
// sprites. Textures are cached by path so every sprite of one file shares a
// single texture.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"io/fs"
	"math"
	"os"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/arcade/internal/domain/sprite"
	"go.uber.org/zap"
)

// ErrEmptyLabel is returned when asked to render an empty string
var ErrEmptyLabel = errors.New("empty label")

// Generator builds a placeholder image for a missing file
type Generator func() image.Image

// Library loads and caches textures
type Library struct {
	fsys     fs.FS
	fallback bool
	log      *zap.Logger

	cache        map[string]*ebiten.Image
	labels       map[labelKey]*ebiten.Image
	placeholders map[string]Generator

	face       text.Face
	lineHeight float64
}

// NewLibrary creates a library reading from dir
func NewLibrary(dir string, fallback bool, log *zap.Logger) *Library {
	return NewFSLibrary(os.DirFS(dir), fallback, log)
}

// NewFSLibrary creates a library reading from fsys.
// With fallback set, missing files that have a registered placeholder are
// generated instead of failing.
func NewFSLibrary(fsys fs.FS, fallback bool, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	face := text.NewGoXFace(bitmapfont.Face)
	m := face.Metrics()
	return &Library{
		fsys:         fsys,
		fallback:     fallback,
		log:          log,
		cache:        make(map[string]*ebiten.Image),
		labels:       make(map[labelKey]*ebiten.Image),
		placeholders: make(map[string]Generator),
		face:         face,
		lineHeight:   m.HAscent + m.HDescent,
	}
}

// RegisterPlaceholder sets the generator used when path is missing
func (l *Library) RegisterPlaceholder(path string, gen Generator) {
	l.placeholders[path] = gen
}

// Image returns a sprite covering the image at path
func (l *Library) Image(path string) (sprite.Sprite, error) {
	if tex, ok := l.cache[path]; ok {
		return sprite.New(tex), nil
	}

	img, err := l.decode(path)
	if err != nil {
		return sprite.Sprite{}, err
	}

	tex := ebiten.NewImageFromImage(img)
	l.cache[path] = tex
	return sprite.New(tex), nil
}

func (l *Library) decode(path string) (image.Image, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		gen, ok := l.placeholders[path]
		if l.fallback && ok && errors.Is(err, fs.ErrNotExist) {
			l.log.Warn("image missing, using placeholder", zap.String("path", path))
			return gen(), nil
		}
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// labelKey identifies one rendered label
type labelKey struct {
	label string
	size  float64
	clr   color.RGBA
}

// Text renders label at size pixels high in clr.
// Rendered labels are cached like textures.
func (l *Library) Text(label string, size float64, clr color.Color) (sprite.Sprite, error) {
	key := labelKey{label: label, size: size, clr: color.RGBAModel.Convert(clr).(color.RGBA)}
	if img, ok := l.labels[key]; ok {
		return sprite.New(img), nil
	}

	w, h, scale, err := l.measure(label, size)
	if err != nil {
		return sprite.Sprite{}, err
	}

	img := ebiten.NewImage(int(math.Ceil(w*scale)), int(math.Ceil(h*scale)))

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = l.lineHeight
	text.Draw(img, label, l.face, op)

	l.labels[key] = img
	return sprite.New(img), nil
}

// measure returns the unscaled label size and the scale reaching size
func (l *Library) measure(label string, size float64) (w, h, scale float64, err error) {
	if label == "" {
		return 0, 0, 0, ErrEmptyLabel
	}
	if size <= 0 {
		return 0, 0, 0, fmt.Errorf("invalid text size %v", size)
	}
	w, h = text.Measure(label, l.face, l.lineHeight)
	return w, h, size / l.lineHeight, nil
}
