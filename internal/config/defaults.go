package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration: a 40px avatar
// stepping 40px, 15px obstacles every 8s, 25px bonus every third obstacle,
// a 15ms tick and speed starting at 5 and growing by 1 per obstacle.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Avatar: AvatarConfig{
			Size: 40,
			Step: 40,
		},
		Obstacles: ObstacleConfig{
			Size:     15,
			Capacity: 64,
		},
		Bonus: BonusConfig{
			Size:  25,
			Every: 3,
		},
		Timing: TimingConfig{
			StepMS:  15,
			SpawnMS: 8000,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed:   5,
			SpeedIncrement: 1,
			MaxSpeed:       0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
