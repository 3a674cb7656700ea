package sim

import "github.com/vovakirdan/blockdodge/internal/core"

// Move returns the avatar position after one discrete step in the direction
// of the action, clamped so the avatar box stays inside the viewport.
// Non-movement actions return the position unchanged.
func Move(pos Avatar, a core.Action, vp core.Viewport, step, size float64) Avatar {
	maxTop := vp.H - size
	maxLeft := vp.W - size

	switch a {
	case core.ActionUp:
		pos.Top = core.Clamp(pos.Top-step, 0, maxTop)
	case core.ActionDown:
		pos.Top = core.Clamp(pos.Top+step, 0, maxTop)
	case core.ActionLeft:
		pos.Left = core.Clamp(pos.Left-step, 0, maxLeft)
	case core.ActionRight:
		pos.Left = core.Clamp(pos.Left+step, 0, maxLeft)
	}
	return pos
}

// ApplyKey moves the avatar for a key identifier (w, a, s, d in any case).
// It reports whether the key was a movement key that was applied.
func (s *State) ApplyKey(key string) bool {
	return s.ApplyAction(core.MoveKey(key))
}

// ApplyAction moves the avatar one step. Unknown actions, a paused game and
// a finished game leave the state untouched.
func (s *State) ApplyAction(a core.Action) bool {
	if !a.IsMove() || !s.Active() {
		return false
	}
	s.Avatar = Move(s.Avatar, a, s.Viewport, s.params.AvatarStep, s.params.AvatarSize)
	return true
}
