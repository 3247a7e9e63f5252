// Package screens holds the concrete views: the main menu and the ship view.
// They live in one package because each one builds the other.
package screens

import (
	"fmt"

	"github.com/younwookim/arcade/internal/application/view"
	"github.com/younwookim/arcade/internal/domain/background"
)

// LoadBackgrounds builds the star field from the configured layers
func LoadBackgrounds(ctx *view.Context) (background.Set, error) {
	layers := ctx.Config.Backgrounds

	back, err := ctx.Assets.Image(layers.Back.Path)
	if err != nil {
		return background.Set{}, fmt.Errorf("back layer: %w", err)
	}
	middle, err := ctx.Assets.Image(layers.Middle.Path)
	if err != nil {
		return background.Set{}, fmt.Errorf("middle layer: %w", err)
	}
	front, err := ctx.Assets.Image(layers.Front.Path)
	if err != nil {
		return background.Set{}, fmt.Errorf("front layer: %w", err)
	}

	vel := background.Velocities{
		Back:   layers.Back.Velocity,
		Middle: layers.Middle.Velocity,
		Front:  layers.Front.Velocity,
	}
	return background.NewSet(back, middle, front, vel), nil
}
