// Package tui provides the Bubble Tea integration for Block Dodge.
// It maps keys to loop intents and renders the snapshots the loop publishes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockdodge/internal/loop"
	"github.com/vovakirdan/blockdodge/internal/sim"
)

// SnapshotMsg carries the latest simulation state to the model.
type SnapshotMsg sim.Snapshot

// LoopStoppedMsg is sent when the simulation loop exits.
type LoopStoppedMsg struct{}

// waitForSnapshot returns a command that blocks until the loop publishes.
// The model re-issues it after every snapshot.
func waitForSnapshot(l *loop.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-l.Snapshots():
			return SnapshotMsg(snap)
		case <-l.Done():
			return LoopStoppedMsg{}
		}
	}
}
