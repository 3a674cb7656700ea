package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultDodgeConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  initial_speed: 9\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Difficulty.InitialSpeed != 9 {
		t.Errorf("InitialSpeed = %v, expected 9", cfg.Difficulty.InitialSpeed)
	}
	// Untouched keys keep defaults
	if cfg.Avatar.Size != 40 || cfg.Timing.SpawnMS != 8000 {
		t.Errorf("defaults should survive partial override, got %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"zero avatar", "avatar:\n  size: 0\n", "INVALID_SIZE"},
		{"negative step period", "timing:\n  step_ms: -1\n", "INVALID_TIMING"},
		{"zero bonus cadence", "bonus:\n  every: 0\n", "INVALID_BONUS"},
		{"negative capacity", "obstacles:\n  capacity: -2\n", "INVALID_CAPACITY"},
		{"negative speed", "difficulty:\n  speed_increment: -1\n", "INVALID_SPEED"},
		{"zero cell", "viewport:\n  cell_width: 0\n", "INVALID_CELL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("avatar: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  capacity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Obstacles.Capacity != 0 {
		t.Errorf("Capacity = %d, expected 0", cfg.Obstacles.Capacity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Obstacles.Capacity = 7

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard ", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.SpeedIncrement != 0 {
		t.Errorf("fixed preset should disable escalation, got increment %v", cfg.Difficulty.SpeedIncrement)
	}
	if cfg.Difficulty.InitialSpeed != 5 {
		t.Errorf("fixed preset should keep initial speed, got %v", cfg.Difficulty.InitialSpeed)
	}

	cfg = DefaultDodgeConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultDodgeConfig() {
		t.Error("empty preset should not modify config")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialSpeed <= DefaultDodgeConfig().Difficulty.InitialSpeed {
		t.Error("hard preset should start faster")
	}
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgeConfig().Difficulty)

	if d.InitialSpeed() != 5 {
		t.Errorf("InitialSpeed() = %v, expected 5", d.InitialSpeed())
	}
	if d.Next(5) != 6 {
		t.Errorf("Next(5) = %v, expected 6", d.Next(5))
	}
	if d.SpeedAfter(100) != 105 {
		t.Errorf("SpeedAfter(100) = %v, expected 105 (unbounded)", d.SpeedAfter(100))
	}
	if !d.IsEscalating() {
		t.Error("default difficulty should escalate")
	}

	capped := NewDifficultyManager(DifficultyConfig{InitialSpeed: 5, SpeedIncrement: 1, MaxSpeed: 7})
	if capped.SpeedAfter(10) != 7 {
		t.Errorf("capped SpeedAfter(10) = %v, expected 7", capped.SpeedAfter(10))
	}
	if capped.Next(7) != 7 {
		t.Errorf("capped Next(7) = %v, expected 7", capped.Next(7))
	}
}

func TestTimingIntervals(t *testing.T) {
	timing := DefaultDodgeConfig().Timing
	if timing.StepInterval().Milliseconds() != 15 {
		t.Errorf("StepInterval() = %v", timing.StepInterval())
	}
	if timing.SpawnInterval().Seconds() != 8 {
		t.Errorf("SpawnInterval() = %v", timing.SpawnInterval())
	}
}
