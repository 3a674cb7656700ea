// Package loop runs the simulation on a single goroutine. Key presses,
// resizes and the two timers (step and spawn) all funnel into one select, so
// every mutation of the game state is applied atomically with respect to the
// others without any locking.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockdodge/internal/config"
	"github.com/vovakirdan/blockdodge/internal/core"
	"github.com/vovakirdan/blockdodge/internal/sim"
)

// ErrStopped is returned by Post once the loop has exited.
var ErrStopped = errors.New("loop: stopped")

// inboxSize bounds how many intents may queue before Post blocks.
const inboxSize = 64

// Options configures a Loop.
type Options struct {
	Config   config.DodgeConfig
	Viewport core.Viewport
	Seed     int64
	Logger   *log.Logger // nil discards logs
}

// Loop owns a sim.State and the timers that drive it.
type Loop struct {
	cfg       config.DodgeConfig
	state     *sim.State
	seed      int64
	runID     string
	inbox     chan Intent
	snapshots chan sim.Snapshot
	done      chan struct{}
	logger    *log.Logger

	stepTicker  *time.Ticker
	spawnTicker *time.Ticker
	stepC       <-chan time.Time // nil while the step timer is cancelled
	spawnC      <-chan time.Time // nil while the spawn timer is cancelled
}

// New creates a loop with a fresh game. Nothing runs until Run is called.
func New(opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := &Loop{
		cfg:       opts.Config,
		seed:      seed,
		inbox:     make(chan Intent, inboxSize),
		snapshots: make(chan sim.Snapshot, 1),
		done:      make(chan struct{}),
		logger:    logger,
	}
	l.state = sim.New(opts.Config, opts.Viewport, seed)
	l.runID = uuid.NewString()
	return l
}

// RunID identifies the current game. It changes on restart.
// Only safe to call before Run or from the loop goroutine.
func (l *Loop) RunID() string {
	return l.runID
}

// Snapshots delivers the latest state after every change. Stale snapshots
// are dropped if the reader falls behind; the newest one always wins.
func (l *Loop) Snapshots() <-chan sim.Snapshot {
	return l.snapshots
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues an intent for the loop goroutine.
func (l *Loop) Post(ctx context.Context, in Intent) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}

	select {
	case l.inbox <- in:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the game until ctx is cancelled. Timers are cancelled when the
// game ends and restarted when a new game begins; cancellation only prevents
// future firings.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.stopTimers()

	l.logger.Info("game started", "run", l.runID, "viewport", viewportString(l.state.Viewport))
	l.startTimers()
	l.publish()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "run", l.runID, "score", l.state.Score)
			return nil
		case in := <-l.inbox:
			l.handle(in)
		case <-l.stepC:
			l.onStep()
		case <-l.spawnC:
			l.onSpawn()
		}
	}
}

// handle applies one intent.
func (l *Loop) handle(in Intent) {
	switch in := in.(type) {
	case KeyIntent:
		l.logger.Debug("key pressed", "key", in.Action)
		if l.state.ApplyAction(in.Action) {
			l.publish()
		}
	case ResizeIntent:
		l.state.Resize(in.Viewport)
		l.logger.Debug("viewport resized", "viewport", viewportString(in.Viewport))
		l.publish()
	case PauseIntent:
		if l.state.GameOver {
			return
		}
		paused := l.state.TogglePause()
		l.logger.Debug("pause toggled", "paused", paused)
		l.publish()
	case RestartIntent:
		l.restart(in.Seed)
	}
}

func (l *Loop) onStep() {
	res, ok := l.state.Step()
	if !ok {
		return
	}
	if res.Collected {
		l.logger.Debug("bonus collected", "count", l.state.BonusCount, "respawned", res.BonusSpawned)
	}
	if res.Ended {
		l.stopTimers()
		l.logger.Info("game over",
			"run", l.runID,
			"score", l.state.Score,
			"bonus", l.state.BonusCount,
			"spawned", l.state.SpawnCount,
		)
	}
	l.publish()
}

func (l *Loop) onSpawn() {
	res, ok := l.state.Spawn()
	if !ok {
		return
	}
	l.logger.Debug("obstacle spawned",
		"slot", res.Slot,
		"count", l.state.SpawnCount,
		"speed", l.state.Speed,
		"bonus", res.BonusSpawned,
	)
	l.publish()
}

func (l *Loop) restart(seed int64) {
	if seed == 0 {
		l.seed++
		seed = l.seed
	} else {
		l.seed = seed
	}

	vp := l.state.Viewport
	l.state.Reset(l.cfg, vp, seed)
	l.runID = uuid.NewString()
	l.logger.Info("game restarted", "run", l.runID)

	l.stopTimers()
	l.startTimers()
	l.publish()
}

func (l *Loop) startTimers() {
	l.stepTicker = time.NewTicker(l.cfg.Timing.StepInterval())
	l.spawnTicker = time.NewTicker(l.cfg.Timing.SpawnInterval())
	l.stepC = l.stepTicker.C
	l.spawnC = l.spawnTicker.C
}

func (l *Loop) stopTimers() {
	if l.stepTicker != nil {
		l.stepTicker.Stop()
		l.stepTicker = nil
	}
	if l.spawnTicker != nil {
		l.spawnTicker.Stop()
		l.spawnTicker = nil
	}
	l.stepC = nil
	l.spawnC = nil
}

// publish hands the newest snapshot to the reader, replacing an unread one.
func (l *Loop) publish() {
	snap := l.state.Snapshot()
	select {
	case <-l.snapshots:
	default:
	}
	select {
	case l.snapshots <- snap:
	default:
	}
}

func viewportString(vp core.Viewport) string {
	return fmt.Sprintf("%.0fx%.0f", vp.W, vp.H)
}
