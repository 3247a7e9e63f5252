// Package game provides the main game loop that paces frames and switches views.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arcade/internal/application/frame"
	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/state"
	"github.com/younwookim/arcade/internal/application/view"
	"go.uber.org/zap"
)

// Pacer decides which ebiten ticks run a frame and how long each frame lasted.
// *frame.Clock paces by the wall clock; a replay paces by the recording.
type Pacer interface {
	Tick() (frame.Frame, bool)
}

// FrameRecorder receives the elapsed time and input of every frame run
type FrameRecorder interface {
	Record(elapsed float64, s input.State)
}

// Option configures a Game
type Option func(*Game)

// WithPacer replaces the pacer given to New or built by Spawn
func WithPacer(p Pacer) Option {
	return func(g *Game) { g.pacer = p }
}

// WithRecorder records every frame handed to a view
func WithRecorder(r FrameRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// Game implements ebiten.Game and manages View transitions.
type Game struct {
	current  view.View
	ctx      *view.Context
	source   input.Source
	pacer    Pacer
	recorder FrameRecorder
	state    state.LoopState
	log      *zap.Logger

	// input polled on ticks the pacer skipped
	pending input.State
}

// New creates a new Game with the given initial view.
// The initial view's Resume is called immediately.
func New(ctx *view.Context, source input.Source, pacer Pacer, initial view.View, opts ...Option) *Game {
	g := &Game{
		current: initial,
		ctx:     ctx,
		source:  source,
		pacer:   pacer,
		state:   state.StateStarting,
		log:     ctx.Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.Resume(ctx)
	g.state = state.StateRunning
	g.log.Debug("view resumed", zap.String("view", viewName(initial)))
	return g
}

// Update runs one frame of the current view and applies its action.
// Ticks the pacer skips still poll input; their key presses are handed to
// the next frame that runs.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.state == state.StateStopped {
		return ebiten.Termination
	}

	g.pending = g.pending.Merge(g.source.Poll())

	f, ok := g.pacer.Tick()
	if !ok {
		return nil
	}
	if f.FPS > 0 {
		g.log.Info("frame rate", zap.Int("fps", f.FPS))
	}

	g.ctx.Events = g.pending
	g.pending = input.State{}
	if g.recorder != nil {
		g.recorder.Record(f.Elapsed, g.ctx.Events)
	}

	action, err := g.current.Update(g.ctx, f.Elapsed)
	if err != nil {
		name := viewName(g.current)
		g.stop()
		return fmt.Errorf("%s: %w", name, err)
	}

	switch action.Kind() {
	case view.ActionQuit:
		g.log.Info("quit requested", zap.String("view", viewName(g.current)))
		g.stop()
		return ebiten.Termination
	case view.ActionChangeView:
		g.switchTo(action.Next())
	}

	return nil
}

func (g *Game) switchTo(next view.View) {
	g.state = state.StateSwitching
	g.log.Info("changing view",
		zap.String("from", viewName(g.current)),
		zap.String("to", viewName(next)))

	g.current.Pause(g.ctx)
	g.current = next
	g.current.Resume(g.ctx)
	g.state = state.StateRunning
}

func (g *Game) stop() {
	g.current.Pause(g.ctx)
	g.state = state.StateStopped
}

// Draw renders the current view.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout uses the window size as the logical screen size so views lay
// themselves out for a resizable window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		w, h := g.ctx.OutputSize()
		return int(w), int(h)
	}
	g.ctx.SetOutputSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// State returns the loop's lifecycle state
func (g *Game) State() state.LoopState {
	return g.state
}

// Current returns the current view
func (g *Game) Current() view.View {
	return g.current
}

func viewName(v view.View) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
