package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdodge/internal/core"
	"github.com/vovakirdan/blockdodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game.

Controls:
  W/A/S/D    - Move
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Speed 5, +1 per block
  hard   - Speed 8, +2 per block
  fixed  - No speed-up

Examples:
  blockdodge play
  blockdodge play --difficulty easy
  blockdodge play --log /tmp/blockdodge.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs are discarded unless --log is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		CellW:   cfg.Viewport.CellWidth,
		CellH:   cfg.Viewport.CellHeight,
		Seed:    flagSeed,
	}

	return tui.Run(cmd.Context(), tui.Options{
		Game:    cfg,
		Runtime: rt,
		Logger:  logger,
	})
}
