package sim

import "github.com/vovakirdan/blockdodge/internal/core"

// Snapshot is a read-only copy of the state for presentation.
// It shares no memory with the State it was taken from.
type Snapshot struct {
	Avatar     Avatar        `yaml:"avatar"`
	Obstacles  []Obstacle    `yaml:"obstacles"`
	Bonus      *Bonus        `yaml:"bonus,omitempty"`
	GameOver   bool          `yaml:"game_over"`
	Paused     bool          `yaml:"paused"`
	Score      int           `yaml:"score"`
	BonusCount int           `yaml:"bonus_count"`
	SpawnCount int           `yaml:"spawn_count"`
	Speed      float64       `yaml:"speed"`
	Viewport   core.Viewport `yaml:"-"`
	Params     Params        `yaml:"-"`
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Avatar:     s.Avatar,
		Obstacles:  make([]Obstacle, len(s.Obstacles)),
		GameOver:   s.GameOver,
		Paused:     s.Paused,
		Score:      s.Score,
		BonusCount: s.BonusCount,
		SpawnCount: s.SpawnCount,
		Speed:      s.Speed,
		Viewport:   s.Viewport,
		Params:     s.params,
	}
	copy(snap.Obstacles, s.Obstacles)
	if s.Bonus != nil {
		b := *s.Bonus
		snap.Bonus = &b
	}
	return snap
}
