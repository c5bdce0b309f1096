package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nodeconf/nodeconf-cli/pkg/settings"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// StatusMsg asks the app to show a transient notice in the status bar.
type StatusMsg string

type clearStatusMsg struct {
	id int
}

// snapshotMsg carries a store snapshot into the event loop.
type snapshotMsg struct {
	snap store.Snapshot
}

// subscriptionClosedMsg ends the snapshot wait loop.
type subscriptionClosedMsg struct{}

// pendingDueMsg fires delayed session work once its delay has passed.
type pendingDueMsg struct {
	id   uint64
	kind settings.PendingKind
}

type languageSelectedMsg struct {
	code string
}

type languageModalClosedMsg struct{}

// waitForSnapshot blocks on sub until the next snapshot arrives or the
// subscription is closed.
func waitForSnapshot(sub store.Subscription) tea.Cmd {
	return func() tea.Msg {
		for v := range sub {
			if snap, ok := v.(store.Snapshot); ok {
				return snapshotMsg{snap: snap}
			}
		}
		return subscriptionClosedMsg{}
	}
}

func schedulePending(p settings.Pending) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return pendingDueMsg{id: p.ID, kind: p.Kind}
	})
}

func showStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

func clearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
