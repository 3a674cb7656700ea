package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W - move avatar up
	ActionLeft           // A - move avatar left
	ActionDown           // S - move avatar down
	ActionRight          // D - move avatar right
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action displaces the avatar.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// MoveKey maps a key identifier to a movement action.
// Only w, a, s and d are meaningful, in any case; everything else is ActionNone.
func MoveKey(key string) Action {
	switch strings.ToLower(key) {
	case "w":
		return ActionUp
	case "a":
		return ActionLeft
	case "s":
		return ActionDown
	case "d":
		return ActionRight
	default:
		return ActionNone
	}
}
