package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/taskboard/internal/modal"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/tui/commands"
)

// copiedMessage is the toast shown after copying a title.
const copiedMessage = "Copied to clipboard"

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.help.Width = m.layoutCache.InnerW

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case commands.SettledMsg:
		m, cmd = m.handleSettled(msg)

	case commands.ToastExpiredMsg:
		m.queue.Dismiss(msg.ID)

	case commands.EnterCompleteMsg:
		if msg.Seq == m.dialogSeq {
			m.dialog.EnterComplete()
		}

	case commands.CopiedMsg:
		m.queue.Push(copiedMessage, notify.KindSuccess)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.queue.Push(msg.Err.Error(), notify.KindError)

	case spinner.TickMsg:
		if !m.store.Pending() {
			m.spinning = false
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
	}

	return m.afterUpdate(cmd)
}

// afterUpdate repairs focus and schedules the follow-up work every
// message can cause: toast expiry and the loading spinner.
func (m Model) afterUpdate(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.syncFocus()

	cmds := []tea.Cmd{cmd}
	cmds = append(cmds, commands.ExpireToasts(m.queue.TakeNew(), m.now()))
	if m.store.Pending() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// handleSettled applies a finished remote call on the event loop and
// starts the refetch a successful write reserves.
func (m Model) handleSettled(msg commands.SettledMsg) (Model, tea.Cmd) {
	op := msg.Result.Op()
	if op == reconcile.OpCreate || op == reconcile.OpUpdate {
		m.form.saving = false
	}
	if err := msg.Result.Settle(); err != nil && !errors.Is(err, reconcile.ErrClosed) {
		LogError(op.String(), err)
	}
	return m, commands.Remote(m.ctx, msg.Result.Next())
}

// fetch reloads the whole collection.
func (m Model) fetch() tea.Cmd {
	return commands.Remote(m.ctx, m.engine.Fetch())
}

// syncFocus moves focus back onto something visible when the focused
// element went away: a card removed by a refetch or a closed dialog.
func (m *Model) syncFocus() {
	cur := m.focus.Current()

	if isFormRegion(cur.Region) && !m.dialog.IsOpen() {
		m.focusBoard(-1)
		return
	}
	if cur.Region != modal.RegionBoard {
		return
	}

	p := m.store.Project()
	if idx := p.IndexOf(cur.ID); idx >= 0 {
		m.boardIndex = idx
		return
	}
	if len(p.Visible) == 0 && cur.ID == 0 {
		return
	}
	m.focusBoard(m.boardIndex)
}

// focusBoard focuses the visible card at idx, clamped to the projection.
// A negative idx keeps the last known position.
func (m *Model) focusBoard(idx int) {
	if idx < 0 {
		idx = m.boardIndex
	}
	p := m.store.Project()
	if len(p.Visible) == 0 {
		m.boardIndex = 0
		m.focus.Focus(modal.Target{Region: modal.RegionBoard})
		return
	}
	idx = min(max(idx, 0), len(p.Visible)-1)
	m.boardIndex = idx
	m.focus.Focus(modal.Target{Region: modal.RegionBoard, ID: p.Visible[idx].ID})
}
