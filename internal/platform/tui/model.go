package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockdodge/internal/config"
	"github.com/vovakirdan/blockdodge/internal/core"
	"github.com/vovakirdan/blockdodge/internal/loop"
	"github.com/vovakirdan/blockdodge/internal/sim"
)

// Model is the Bubble Tea model for the game screen. It never mutates the
// simulation directly: keys and resizes are posted to the loop, and the view
// is drawn from the last snapshot received.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	loop     *loop.Loop
	logger   *log.Logger
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	snap     sim.Snapshot
	quitting bool
}

// NewModel creates a model driving the given loop.
func NewModel(ctx context.Context, l *loop.Loop, cfg core.RuntimeConfig, logger *log.Logger) Model {
	ctx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		ctx:    ctx,
		cancel: cancel,
		loop:   l,
		logger: logger,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-core.FooterRows),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init begins listening for snapshots. The loop itself is started by Run.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SnapshotMsg:
		m.snap = sim.Snapshot(msg)
		m.keys.SetGameOver(m.snap.GameOver)
		return m, waitForSnapshot(m.loop)

	case LoopStoppedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey posts the intent for a key press. Intents are posted in the
// order keys arrive.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case action.IsMove():
		m.post(loop.KeyIntent{Action: action})
	case action == core.ActionPause:
		m.post(loop.PauseIntent{})
	case action == core.ActionRestart:
		m.post(loop.RestartIntent{})
	}

	return m, nil
}

// handleResize updates the screen and the simulation viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-core.FooterRows)
	m.post(loop.ResizeIntent{Viewport: m.config.Viewport()})
	return m, nil
}

func (m Model) post(in loop.Intent) {
	if err := m.loop.Post(m.ctx, in); err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Warn("intent dropped", "intent", fmt.Sprintf("%T", in), "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap, m.config)
	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Snapshot returns the last snapshot the model received.
func (m Model) Snapshot() sim.Snapshot {
	return m.snap
}

// Options configures an interactive session.
type Options struct {
	Game    config.DodgeConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Run starts the Bubble Tea program and blocks until the player quits.
// The loop is stopped before Run returns.
func Run(ctx context.Context, opts Options) error {
	l := loop.New(loop.Options{
		Config:   opts.Game,
		Viewport: opts.Runtime.Viewport(),
		Seed:     opts.Runtime.Seed,
		Logger:   opts.Logger,
	})

	model := NewModel(ctx, l, opts.Runtime, opts.Logger)
	defer model.cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- l.Run(model.ctx) }()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()

	// Unmount: stop the timers before returning
	model.cancel()
	if lerr := <-loopErr; lerr != nil {
		return fmt.Errorf("tui: loop: %w", lerr)
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
