package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arcade/internal/application/frame"
	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/view"
	"go.uber.org/zap"
)

// InitFunc builds the first view
type InitFunc func(ctx *view.Context) (view.View, error)

// Spawn opens the window and runs the loop until a view quits.
// Frames are paced by a wall clock at the configured fps unless an option
// supplies another pacer.
func Spawn(ctx *view.Context, source input.Source, init InitFunc, opts ...Option) error {
	cfg := ctx.Config

	first, err := init(ctx)
	if err != nil {
		return fmt.Errorf("failed to create first view: %w", err)
	}

	clock := frame.NewClock(cfg.Loop.FPS, cfg.Loop.ReportInterval)
	g := New(ctx, source, clock, first, opts...)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// Closing the window becomes an input event instead of an immediate exit
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Loop.FPS)

	ctx.Log.Info("starting game loop",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Duration("interval", clock.Interval()))

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
