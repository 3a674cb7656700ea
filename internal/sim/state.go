// Package sim implements the Block Dodge simulation: a player square dodges
// obstacles sliding in from the right while collecting bonus blocks.
//
// The state is a plain struct with no locking. Exactly one goroutine (the
// scheduler loop) may own and mutate it; presentation only ever sees
// Snapshot copies.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/blockdodge/internal/config"
	"github.com/vovakirdan/blockdodge/internal/core"
)

// Avatar is the player-controlled square.
type Avatar struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// Rect returns the avatar's bounding box.
func (a Avatar) Rect(size float64) core.Rect {
	return core.NewRect(a.Left, a.Top, size, size)
}

// Obstacle is a red block. Obstacles are recycled in place, never removed.
type Obstacle struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect(size float64) core.Rect {
	return core.NewRect(o.Left, o.Top, size, size)
}

// Bonus is the yellow collectible. At most one exists at a time.
type Bonus struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// Rect returns the bonus's bounding box.
func (b Bonus) Rect(size float64) core.Rect {
	return core.NewRect(b.Left, b.Top, size, size)
}

// Params are the fixed geometry and cadence of a game.
type Params struct {
	AvatarSize   float64
	AvatarStep   float64
	ObstacleSize float64
	BonusSize    float64
	BonusEvery   int
	Capacity     int // 0 = unbounded obstacle store
}

// ParamsFrom extracts simulation parameters from the game config.
func ParamsFrom(cfg config.DodgeConfig) Params {
	return Params{
		AvatarSize:   cfg.Avatar.Size,
		AvatarStep:   cfg.Avatar.Step,
		ObstacleSize: cfg.Obstacles.Size,
		BonusSize:    cfg.Bonus.Size,
		BonusEvery:   cfg.Bonus.Every,
		Capacity:     cfg.Obstacles.Capacity,
	}
}

// State is the complete mutable game state.
type State struct {
	Avatar     Avatar
	Obstacles  []Obstacle
	Bonus      *Bonus
	Speed      float64
	SpawnCount int
	BonusCount int
	Score      int
	GameOver   bool
	Paused     bool
	Viewport   core.Viewport

	params     Params
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a fresh game: avatar at the origin, no obstacles, no bonus.
func New(cfg config.DodgeConfig, vp core.Viewport, seed int64) *State {
	s := &State{}
	s.Reset(cfg, vp, seed)
	return s
}

// Reset restarts the game with the given config, viewport and seed.
func (s *State) Reset(cfg config.DodgeConfig, vp core.Viewport, seed int64) {
	params := ParamsFrom(cfg)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	initialCap := 8
	if params.Capacity > 0 && params.Capacity < initialCap {
		initialCap = params.Capacity
	}

	*s = State{
		Obstacles:  make([]Obstacle, 0, initialCap),
		Speed:      difficulty.InitialSpeed(),
		Viewport:   vp,
		params:     params,
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Params returns the geometry the state was created with.
func (s *State) Params() Params {
	return s.params
}

// Active reports whether timers should still mutate the state.
func (s *State) Active() bool {
	return !s.GameOver && !s.Paused
}

// Resize changes the viewport used by future spawns and clamps.
// Existing entity positions are left untouched.
func (s *State) Resize(vp core.Viewport) {
	s.Viewport = vp
}

// TogglePause flips the paused flag. It has no effect after game over.
func (s *State) TogglePause() bool {
	if s.GameOver {
		return s.Paused
	}
	s.Paused = !s.Paused
	return s.Paused
}

// randomIn returns a uniform value in [0, span), or 0 when span is not positive.
func (s *State) randomIn(span float64) float64 {
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}

// freshObstacle returns an obstacle at the right edge with a random top.
func (s *State) freshObstacle() Obstacle {
	return Obstacle{
		Top:  s.randomIn(s.Viewport.H - s.params.ObstacleSize),
		Left: s.Viewport.W,
	}
}
