package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/arcade/internal/application/view"
	"github.com/younwookim/arcade/internal/domain/background"
	"github.com/younwookim/arcade/internal/domain/ship"
	"github.com/younwookim/arcade/internal/domain/sprite"
	"go.uber.org/zap"
)

var colorHitBox = color.RGBA{20, 240, 180, 255}

// ShipView is the gameplay screen: the player flies the ship over the star field
type ShipView struct {
	ship     *ship.Ship
	bg       background.Set
	speed    float64
	fraction float64
	debug    bool
}

// NewShipView loads the ship sheet and places the ship at its start position
func NewShipView(ctx *view.Context, bg background.Set) (*ShipView, error) {
	cfg := ctx.Config.Ship

	sheet, err := ctx.Assets.Image(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("ship sheet: %w", err)
	}
	frames, err := sprite.Grid(sheet, cfg.Cols, cfg.Rows, cfg.FrameWidth, cfg.FrameHeight)
	if err != nil {
		return nil, fmt.Errorf("ship sheet %s: %w", cfg.Sheet, err)
	}

	s := ship.New(frames, cfg.StartX, cfg.StartY)
	s.Rect.W, s.Rect.H = cfg.FrameWidth, cfg.FrameHeight

	return &ShipView{
		ship:     s,
		bg:       bg,
		speed:    cfg.Speed,
		fraction: cfg.MovableFraction,
		debug:    ctx.Config.Debug,
	}, nil
}

// String names the view in logs
func (v *ShipView) String() string {
	return "ShipView"
}

// Ship returns the player's ship
func (v *ShipView) Ship() *ship.Ship {
	return v.ship
}

// Backgrounds returns the star field state
func (v *ShipView) Backgrounds() background.Set {
	return v.bg
}

// Resume implements view.View
func (v *ShipView) Resume(ctx *view.Context) {
	ctx.Log.Debug("ship view resumed",
		zap.Float64("x", v.ship.Rect.X),
		zap.Float64("y", v.ship.Rect.Y))
}

// Pause implements view.View
func (v *ShipView) Pause(ctx *view.Context) {}

// Update implements view.View
func (v *ShipView) Update(ctx *view.Context, elapsed float64) (view.Action, error) {
	ev := ctx.Events

	if ev.Quit {
		return view.Quit(), nil
	}
	if ev.EscapePressed {
		menu, err := MainMenuWithBackgrounds(ctx, v.bg)
		if err != nil {
			return view.None(), err
		}
		return view.ChangeView(menu), nil
	}

	dx, dy := ship.Displacement(ev.Steering(), v.speed, elapsed)
	w, h := ctx.OutputSize()
	v.ship.Move(dx, dy, ship.MovableRegion(w, h, v.fraction))

	v.bg.Advance(elapsed)
	return view.None(), nil
}

// Draw implements view.View
func (v *ShipView) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	v.bg.DrawBack(screen)

	if v.debug {
		fillRect(screen, v.ship.Rect, colorHitBox)
	}
	if s, ok := v.ship.Sprite(); ok {
		s.Render(screen, v.ship.Rect)
	}

	v.bg.DrawFront(screen)
}
