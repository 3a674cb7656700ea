package loop

import "github.com/vovakirdan/blockdodge/internal/core"

// Intent is a request posted to the loop inbox. Intents are applied one at
// a time by the loop goroutine, interleaved with timer firings.
type Intent interface {
	intent()
}

// KeyIntent carries one key-down delivery.
type KeyIntent struct {
	Action core.Action
}

// ResizeIntent changes the viewport used for future spawns and clamps.
type ResizeIntent struct {
	Viewport core.Viewport
}

// PauseIntent toggles pause.
type PauseIntent struct{}

// RestartIntent starts a new game. A zero seed keeps the loop's seed source.
type RestartIntent struct {
	Seed int64
}

func (KeyIntent) intent()     {}
func (ResizeIntent) intent()  {}
func (PauseIntent) intent()   {}
func (RestartIntent) intent() {}
