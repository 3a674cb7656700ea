package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockdodge/internal/config"
	"github.com/vovakirdan/blockdodge/internal/core"
	"github.com/vovakirdan/blockdodge/internal/sim"
)

var (
	flagTicks      int
	flagKeys       string
	flagSpawnEvery int
	flagWidth      float64
	flagHeight     float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the final state",
	Long: `Run a game without a terminal UI. Time is counted in steps instead of
wall-clock milliseconds, so the same seed and keys always produce the
same result.

Keys are applied one per step, before that step runs. Only w/a/s/d move;
any other character is a no-op step.

Examples:
  blockdodge sim --seed 42
  blockdodge sim --seed 7 --ticks 5000 --keys ddddddssss
  blockdodge sim --seed 7 --spawn-every 100 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 2000, "Number of steps to run (stops early on game over)")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Key sequence, one key per step")
	simCmd.Flags().IntVar(&flagSpawnEvery, "spawn-every", 0, "Steps between spawns (0 = spawn_ms / step_ms)")
	simCmd.Flags().Float64Var(&flagWidth, "width", 800, "Viewport width in pixels")
	simCmd.Flags().Float64Var(&flagHeight, "height", 440, "Viewport height in pixels")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if flagTicks < 0 {
		return fmt.Errorf("--ticks must be >= 0, got %d", flagTicks)
	}
	if flagWidth <= 0 || flagHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %.0fx%.0f", flagWidth, flagHeight)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	spawnEvery := flagSpawnEvery
	if spawnEvery <= 0 {
		spawnEvery = SpawnEvery(cfg.Timing)
	}

	vp := core.Viewport{W: flagWidth, H: flagHeight}
	run := Headless{
		Config:     cfg,
		Viewport:   vp,
		Seed:       seed,
		Ticks:      flagTicks,
		Keys:       flagKeys,
		SpawnEvery: spawnEvery,
		Logger:     logger.With("run", uuid.NewString()),
	}

	snap := run.Play()
	return writeSnapshot(cmd.OutOrStdout(), snap)
}

// SpawnEvery converts the spawn period into a number of steps.
func SpawnEvery(t config.TimingConfig) int {
	return core.Max(t.SpawnMS/t.StepMS, 1)
}

// Headless drives a sim.State on a step counter instead of timers.
type Headless struct {
	Config     config.DodgeConfig
	Viewport   core.Viewport
	Seed       int64
	Ticks      int
	Keys       string
	SpawnEvery int
	Logger     *log.Logger
}

// Play runs the game and returns the final snapshot.
func (h Headless) Play() sim.Snapshot {
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	st := sim.New(h.Config, h.Viewport, h.Seed)
	keys := []rune(h.Keys)

	logger.Info("sim started", "seed", h.Seed, "ticks", h.Ticks, "spawn_every", h.SpawnEvery)
	for tick := 0; tick < h.Ticks; tick++ {
		if tick < len(keys) && st.ApplyKey(string(keys[tick])) {
			logger.Debug("key pressed", "tick", tick, "key", string(keys[tick]))
		}

		if tick > 0 && tick%h.SpawnEvery == 0 {
			if res, ok := st.Spawn(); ok {
				logger.Debug("spawn", "tick", tick, "slot", res.Slot, "speed", st.Speed, "bonus", res.BonusSpawned)
			}
		}

		res, ok := st.Step()
		if !ok {
			break
		}
		if res.Collected {
			logger.Debug("bonus collected", "tick", tick, "count", st.BonusCount)
		}
		if res.Ended {
			logger.Info("game over", "tick", tick, "score", st.Score, "bonus", st.BonusCount)
			break
		}
	}

	return st.Snapshot()
}

func writeSnapshot(w io.Writer, snap sim.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}
