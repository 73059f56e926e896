// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
)

// EntryTransition is how long the dialog takes to appear before its title
// field receives focus.
const EntryTransition = 100 * time.Millisecond

// SettledMsg is sent when a remote call has finished and its result must
// be applied on the event loop.
type SettledMsg struct {
	Result reconcile.Result
}

// ToastExpiredMsg is sent when a toast's lifetime has elapsed.
type ToastExpiredMsg struct {
	ID uint64
}

// EnterCompleteMsg is sent when the dialog entry transition finishes.
// Seq identifies the dialog opening it belongs to.
type EnterCompleteMsg struct {
	Seq int
}

// CopiedMsg is sent after a title was written to the clipboard.
type CopiedMsg struct {
	Title string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// Remote runs the network part of call off the event loop. A nil call
// yields a nil command.
func Remote(ctx context.Context, call *reconcile.Call) tea.Cmd {
	if call == nil {
		return nil
	}
	return func() tea.Msg {
		return SettledMsg{Result: call.Remote(ctx)}
	}
}

// ExpireToasts schedules one expiry per toast, measured from its creation.
func ExpireToasts(toasts []notify.Toast, now time.Time) tea.Cmd {
	if len(toasts) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(toasts))
	for _, t := range toasts {
		id := t.ID
		wait := max(t.ExpiresAt().Sub(now), 0)
		cmds = append(cmds, tea.Tick(wait, func(time.Time) tea.Msg {
			return ToastExpiredMsg{ID: id}
		}))
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// EnterComplete fires EnterCompleteMsg after the entry transition.
func EnterComplete(seq int) tea.Cmd {
	return tea.Tick(EntryTransition, func(time.Time) tea.Msg {
		return EnterCompleteMsg{Seq: seq}
	})
}

// CopyTitle writes title to the system clipboard.
func CopyTitle(title string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(title); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Title: title}
	}
}
