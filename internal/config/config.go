// Package config provides YAML-based game configuration loading and
// difficulty management for Block Dodge.
package config

import (
	"fmt"
	"strings"
	"time"
)

// DodgeConfig contains all tunable parameters of the game.
type DodgeConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Avatar     AvatarConfig     `yaml:"avatar"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig maps terminal cells to simulation pixels.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AvatarConfig defines the player square.
type AvatarConfig struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"` // Displacement per key press
}

// ObstacleConfig defines the red blocks.
type ObstacleConfig struct {
	Size     float64 `yaml:"size"`
	Capacity int     `yaml:"capacity"` // Max slots before spawns reuse old slots, 0 = unbounded
}

// BonusConfig defines the yellow block.
type BonusConfig struct {
	Size  float64 `yaml:"size"`
	Every int     `yaml:"every"` // Spawn count cadence
}

// TimingConfig defines the periods of the two timers.
type TimingConfig struct {
	StepMS  int `yaml:"step_ms"`
	SpawnMS int `yaml:"spawn_ms"`
}

// StepInterval returns the stepper period.
func (t TimingConfig) StepInterval() time.Duration {
	return time.Duration(t.StepMS) * time.Millisecond
}

// SpawnInterval returns the spawner period.
func (t TimingConfig) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnMS) * time.Millisecond
}

// DifficultyConfig defines the speed escalation policy.
type DifficultyConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added on every spawn event
	MaxSpeed       float64 `yaml:"max_speed"`       // 0 = unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string keeps the
// loaded config untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ValidationError describes a config value that cannot be used.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that every size and period is usable.
func (c DodgeConfig) Validate() error {
	positive := []struct {
		code  string
		name  string
		value float64
	}{
		{"INVALID_CELL", "viewport.cell_width", c.Viewport.CellWidth},
		{"INVALID_CELL", "viewport.cell_height", c.Viewport.CellHeight},
		{"INVALID_SIZE", "avatar.size", c.Avatar.Size},
		{"INVALID_SIZE", "avatar.step", c.Avatar.Step},
		{"INVALID_SIZE", "obstacles.size", c.Obstacles.Size},
		{"INVALID_SIZE", "bonus.size", c.Bonus.Size},
		{"INVALID_TIMING", "timing.step_ms", float64(c.Timing.StepMS)},
		{"INVALID_TIMING", "timing.spawn_ms", float64(c.Timing.SpawnMS)},
		{"INVALID_BONUS", "bonus.every", float64(c.Bonus.Every)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Code:    p.code,
				Message: fmt.Sprintf("%s must be positive, got %v", p.name, p.value),
			}
		}
	}

	if c.Obstacles.Capacity < 0 {
		return ValidationError{
			Code:    "INVALID_CAPACITY",
			Message: fmt.Sprintf("obstacles.capacity must be >= 0, got %d", c.Obstacles.Capacity),
		}
	}
	if c.Difficulty.InitialSpeed < 0 || c.Difficulty.SpeedIncrement < 0 || c.Difficulty.MaxSpeed < 0 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: "difficulty speeds must not be negative",
		}
	}
	return nil
}
