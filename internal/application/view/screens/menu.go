package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/arcade/internal/application/view"
	"github.com/younwookim/arcade/internal/domain/background"
	"github.com/younwookim/arcade/internal/domain/geom"
	"github.com/younwookim/arcade/internal/domain/sprite"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"go.uber.org/zap"
)

// menuAction is one selectable entry of the main menu
type menuAction struct {
	label string
	idle  sprite.Sprite
	hover sprite.Sprite
	run   func(ctx *view.Context) (view.Action, error)
}

// MainMenu lets the player start a game or quit
type MainMenu struct {
	actions  []menuAction
	selected int
	bg       background.Set
	cfg      config.MenuConfig
}

// NewMainMenu creates the menu with freshly loaded backgrounds
func NewMainMenu(ctx *view.Context) (*MainMenu, error) {
	bg, err := LoadBackgrounds(ctx)
	if err != nil {
		return nil, err
	}
	return MainMenuWithBackgrounds(ctx, bg)
}

// MainMenuWithBackgrounds creates the menu continuing the scroll of bg
func MainMenuWithBackgrounds(ctx *view.Context, bg background.Set) (*MainMenu, error) {
	m := &MainMenu{
		bg:  bg,
		cfg: ctx.Config.Menu,
	}

	entries := []struct {
		label string
		run   func(ctx *view.Context) (view.Action, error)
	}{
		{"New game", m.newGame},
		{"Quit", func(*view.Context) (view.Action, error) { return view.Quit(), nil }},
	}

	for _, e := range entries {
		idle, err := ctx.Assets.Text(e.label, m.cfg.IdleSize, m.cfg.IdleColor.Color())
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", e.label, err)
		}
		hover, err := ctx.Assets.Text(e.label, m.cfg.HoverSize, m.cfg.HoverColor.Color())
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", e.label, err)
		}
		m.actions = append(m.actions, menuAction{label: e.label, idle: idle, hover: hover, run: e.run})
	}

	return m, nil
}

func (m *MainMenu) newGame(ctx *view.Context) (view.Action, error) {
	next, err := NewShipView(ctx, m.bg)
	if err != nil {
		return view.None(), err
	}
	return view.ChangeView(next), nil
}

// String names the view in logs
func (m *MainMenu) String() string {
	return "MainMenu"
}

// Selected returns the label of the highlighted action
func (m *MainMenu) Selected() string {
	return m.actions[m.selected].label
}

// Backgrounds returns the star field state
func (m *MainMenu) Backgrounds() background.Set {
	return m.bg
}

// Resume implements view.View
func (m *MainMenu) Resume(ctx *view.Context) {
	ctx.Log.Debug("main menu resumed", zap.String("selected", m.Selected()))
}

// Pause implements view.View
func (m *MainMenu) Pause(ctx *view.Context) {}

// Update implements view.View
func (m *MainMenu) Update(ctx *view.Context, elapsed float64) (view.Action, error) {
	ev := ctx.Events

	if ev.Quit || ev.EscapePressed {
		return view.Quit(), nil
	}

	if ev.ConfirmPressed {
		return m.actions[m.selected].run(ctx)
	}

	n := len(m.actions)
	if ev.UpPressed {
		m.selected = (m.selected - 1 + n) % n
	}
	if ev.DownPressed {
		m.selected = (m.selected + 1) % n
	}

	m.bg.Advance(elapsed)
	return view.None(), nil
}

// Draw implements view.View
func (m *MainMenu) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	m.bg.DrawBack(screen)

	b := screen.Bounds()
	l := newMenuLayout(m.cfg, float64(b.Dx()), float64(b.Dy()), len(m.actions))

	fillRect(screen, l.Border, m.cfg.BorderColor.Color())
	fillRect(screen, l.Box, m.cfg.BoxColor.Color())

	for i, a := range m.actions {
		s := a.idle
		if i == m.selected {
			s = a.hover
		}
		w, h := s.Size()
		s.Render(screen, l.Label(i, w, h))
	}

	m.bg.DrawFront(screen)
}

// menuLayout places the menu box in the middle of the output
type menuLayout struct {
	Border geom.Rect
	Box    geom.Rect

	winW, winH   float64
	boxH, labelH float64
}

func newMenuLayout(cfg config.MenuConfig, winW, winH float64, labels int) menuLayout {
	boxH := float64(labels) * cfg.LabelHeight
	box := geom.Rect{
		X: (winW - cfg.BoxWidth) / 2,
		Y: (winH-boxH)/2 - cfg.Margin,
		W: cfg.BoxWidth,
		H: boxH + cfg.Margin*2,
	}
	border := geom.Rect{
		X: box.X - cfg.BorderWidth,
		Y: box.Y - cfg.BorderWidth,
		W: box.W + cfg.BorderWidth*2,
		H: box.H + cfg.BorderWidth*2,
	}
	return menuLayout{
		Border: border,
		Box:    box,
		winW:   winW,
		winH:   winH,
		boxH:   boxH,
		labelH: cfg.LabelHeight,
	}
}

// Label centres a w x h label in row i
func (l menuLayout) Label(i int, w, h float64) geom.Rect {
	return geom.Rect{
		X: (l.winW - w) / 2,
		Y: (l.winH-l.boxH+l.labelH-h)/2 + l.labelH*float64(i),
		W: w,
		H: h,
	}
}

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
