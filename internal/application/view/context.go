package view

import (
	"image/color"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/domain/sprite"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Assets creates sprites for views
type Assets interface {
	// Image returns a sprite covering the named image
	Image(path string) (sprite.Sprite, error)
	// Text renders label at size points in clr
	Text(label string, size float64, clr color.Color) (sprite.Sprite, error)
}

// Context is shared by the loop and every view
type Context struct {
	Events input.State
	Assets Assets
	Config *config.Config
	Log    *zap.Logger

	width, height float64
}

// NewContext creates a context with the configured window size as output size
func NewContext(cfg *config.Config, assets Assets, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Assets: assets,
		Config: cfg,
		Log:    log,
		width:  float64(cfg.Window.Width),
		height: float64(cfg.Window.Height),
	}
}

// OutputSize returns the size of the drawing surface in pixels
func (c *Context) OutputSize() (w, h float64) {
	return c.width, c.height
}

// SetOutputSize records the drawing surface size
func (c *Context) SetOutputSize(w, h float64) {
	c.width, c.height = w, h
}
