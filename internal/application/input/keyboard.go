package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Bindings maps each action to the keys that trigger it
type Bindings struct {
	Up      []ebiten.Key
	Down    []ebiten.Key
	Left    []ebiten.Key
	Right   []ebiten.Key
	Escape  []ebiten.Key
	Confirm []ebiten.Key
}

// DefaultBindings returns arrow keys, Escape, and Space/Enter to confirm
func DefaultBindings() Bindings {
	return Bindings{
		Up:      []ebiten.Key{ebiten.KeyArrowUp},
		Down:    []ebiten.Key{ebiten.KeyArrowDown},
		Left:    []ebiten.Key{ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyArrowRight},
		Escape:  []ebiten.Key{ebiten.KeyEscape},
		Confirm: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
	}
}

// ParseBindings resolves key names from the config
func ParseBindings(cfg config.InputConfig) (Bindings, error) {
	var b Bindings
	groups := []struct {
		action string
		names  []string
		dst    *[]ebiten.Key
	}{
		{"up", cfg.Up, &b.Up},
		{"down", cfg.Down, &b.Down},
		{"left", cfg.Left, &b.Left},
		{"right", cfg.Right, &b.Right},
		{"escape", cfg.Escape, &b.Escape},
		{"confirm", cfg.Confirm, &b.Confirm},
	}

	for _, g := range groups {
		if len(g.names) == 0 {
			return Bindings{}, fmt.Errorf("no keys bound to %s", g.action)
		}
		keys, err := parseKeys(g.names)
		if err != nil {
			return Bindings{}, fmt.Errorf("binding %s: %w", g.action, err)
		}
		*g.dst = keys
	}
	return b, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Keyboard reads ebiten's keyboard state
type Keyboard struct {
	bindings Bindings
}

// NewKeyboard creates a keyboard source
func NewKeyboard(bindings Bindings) *Keyboard {
	return &Keyboard{bindings: bindings}
}

// Poll reads the current input state
func (k *Keyboard) Poll() State {
	b := k.bindings
	return State{
		Up:             anyPressed(b.Up),
		Down:           anyPressed(b.Down),
		Left:           anyPressed(b.Left),
		Right:          anyPressed(b.Right),
		UpPressed:      anyJustPressed(b.Up),
		DownPressed:    anyJustPressed(b.Down),
		EscapePressed:  anyJustPressed(b.Escape),
		ConfirmPressed: anyJustPressed(b.Confirm),
		Quit:           ebiten.IsWindowBeingClosed(),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
