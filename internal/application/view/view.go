// Package view defines the View interface for game screens and the
// actions a view returns to the game loop.
//
// Each screen (main menu, ship, ...) implements View. The loop calls Update
// once per accepted frame and switches views according to the returned Action.
package view

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// View is a renderable game state.
type View interface {
	// Resume is called when the view becomes current.
	Resume(ctx *Context)

	// Pause is called when the view stops being current, either because
	// another view replaces it or because the game quits.
	Pause(ctx *Context)

	// Update advances the view by elapsed seconds and reports what the loop
	// should do next. An error terminates the game.
	Update(ctx *Context, elapsed float64) (Action, error)

	// Draw renders the state produced by the last Update.
	Draw(screen *ebiten.Image)
}

// ActionKind tells the loop what to do after an update
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionChangeView
)

// String returns the string representation of the action kind
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionChangeView:
		return "ChangeView"
	default:
		return "Unknown"
	}
}

// Action is the result of View.Update
type Action struct {
	kind ActionKind
	next View
}

// None keeps the current view
func None() Action {
	return Action{kind: ActionNone}
}

// Quit ends the game
func Quit() Action {
	return Action{kind: ActionQuit}
}

// ChangeView replaces the current view with next.
// A nil next is treated as None.
func ChangeView(next View) Action {
	if next == nil {
		return None()
	}
	return Action{kind: ActionChangeView, next: next}
}

// Kind returns the action kind
func (a Action) Kind() ActionKind {
	return a.kind
}

// Next returns the view to switch to, nil unless Kind is ActionChangeView
func (a Action) Next() View {
	return a.next
}
