package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/modal"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
	"github.com/javiermolinar/taskboard/internal/tui/commands"
	"github.com/javiermolinar/taskboard/internal/tui/view"
)

// handleKeyMsg routes a key to the topmost overlay, or else to the handler
// of the focused region.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	LogKeyPress(msg, m.focus.Current())

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showHelp:
		return m.handleHelpKeys(msg)
	case m.confirming:
		return m.handleConfirmKeys(msg)
	case m.dialog.IsOpen():
		return m.handleDialogKeys(msg)
	}

	switch m.focus.Current().Region {
	case modal.RegionSearch:
		return m.handleSearchKeys(msg)
	case modal.RegionSidebar:
		return m.handleSidebarKeys(msg)
	default:
		return m.handleBoardKeys(msg)
	}
}

// handleBoardKeys handles keys while a card (or the empty board) is
// focused. Card actions address the focused card by task ID.
func (m Model) handleBoardKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.New):
		return m.openCreate()

	case key.Matches(msg, k.Edit):
		if t, ok := m.focusedTask(); ok {
			return m.openEdit(t)
		}

	case key.Matches(msg, k.Toggle):
		if t, ok := m.focusedTask(); ok {
			return m, commands.Remote(m.ctx, m.engine.Toggle(t.ID))
		}

	case key.Matches(msg, k.Delete):
		if t, ok := m.focusedTask(); ok {
			m.confirming = true
			m.confirmID = t.ID
		}

	case key.Matches(msg, k.Copy):
		if t, ok := m.focusedTask(); ok {
			return m, commands.CopyTitle(t.Title)
		}

	case key.Matches(msg, k.Search):
		m.focus.Focus(modal.Target{Region: modal.RegionSearch})

	case key.Matches(msg, k.Grid):
		m.store.SetLayout(board.LayoutGrid)

	case key.Matches(msg, k.List):
		m.store.SetLayout(board.LayoutList)

	case key.Matches(msg, k.Tab):
		m.focusSidebar(m.sidebarActive)

	case key.Matches(msg, k.Up):
		m.moveBoard(-m.rowStride())
	case key.Matches(msg, k.Down):
		m.moveBoard(m.rowStride())
	case key.Matches(msg, k.Left):
		if m.store.Layout() == board.LayoutGrid {
			m.moveBoard(-1)
		}
	case key.Matches(msg, k.Right):
		if m.store.Layout() == board.LayoutGrid {
			m.moveBoard(1)
		}

	case key.Matches(msg, k.Reload):
		return m, m.fetch()

	case key.Matches(msg, k.Help):
		m.showHelp = true

	case key.Matches(msg, k.Esc):
		m.clearSearch()
	}
	return m, nil
}

// handleSidebarKeys handles keys while a sidebar entry is focused.
func (m Model) handleSidebarKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	cur := int(m.focus.Current().ID)
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		m.focusSidebar(cur - 1)
	case key.Matches(msg, k.Down):
		m.focusSidebar(cur + 1)
	case msg.String() == "enter", msg.String() == " ":
		m.activateSidebar(cur)
	case key.Matches(msg, k.Tab), key.Matches(msg, k.Right), key.Matches(msg, k.Esc):
		m.focusBoard(-1)
	case key.Matches(msg, k.Search):
		m.focus.Focus(modal.Target{Region: modal.RegionSearch})
	case key.Matches(msg, k.New):
		return m.openCreate()
	case key.Matches(msg, k.Reload):
		return m, m.fetch()
	case key.Matches(msg, k.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleSearchKeys feeds the search box. The projection follows every
// keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearSearch()
		m.focusBoard(-1)
		return m, nil
	case "enter", "tab", "down":
		m.focusBoard(0)
		return m, nil
	}

	var cmd tea.Cmd
	*m.search, cmd = m.search.Update(msg)
	m.store.SetSearch(m.search.Value())
	return m, cmd
}

// handleDialogKeys handles keys while the task dialog is open.
func (m Model) handleDialogKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	region := m.focus.Current().Region

	switch {
	case key.Matches(msg, k.Cancel):
		m.form.saving = false
		m.dialog.Close()
		return m, nil

	case key.Matches(msg, k.Save):
		return m.saveDialog()

	case key.Matches(msg, k.Submit) && region == modal.RegionFormTitle:
		return m.saveDialog()

	case key.Matches(msg, k.NextField):
		m.focus.Focus(modal.Target{Region: cycleFormRegion(region, 1)})
		return m, nil

	case key.Matches(msg, k.PrevField):
		m.focus.Focus(modal.Target{Region: cycleFormRegion(region, -1)})
		return m, nil

	case key.Matches(msg, k.Check) && region == modal.RegionFormCompleted:
		m.form.completed = !m.form.completed
		return m, nil
	}

	if m.form.saving {
		return m, nil
	}
	return m, m.form.update(msg, region)
}

// saveDialog validates the dialog and starts the create or update call.
// The dialog stays open until the call succeeds.
func (m Model) saveDialog() (Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}
	sub, err := m.dialog.Save()
	if err != nil {
		return m, nil
	}

	var call *reconcile.Call
	switch sub.Mode {
	case modal.ModeEdit:
		call, err = m.engine.Update(sub.ID, sub.Draft)
	default:
		call, err = m.engine.Create(sub.Draft)
	}
	if err != nil {
		return m, nil
	}
	m.form.saving = true
	return m, commands.Remote(m.ctx, call)
}

// handleConfirmKeys answers the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	var yes bool
	switch {
	case key.Matches(msg, m.keys.Yes):
		yes = true
	case key.Matches(msg, m.keys.No):
		yes = false
	default:
		return m, nil
	}

	id := m.confirmID
	m.confirming = false
	m.confirmID = 0

	call, err := m.engine.Delete(id, reconcile.Answer(yes))
	if err != nil {
		if !errors.Is(err, reconcile.ErrConfirmationDeclined) {
			LogError("delete", err)
		}
		return m, nil
	}
	return m, commands.Remote(m.ctx, call)
}

// handleHelpKeys closes the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) {
		m.showHelp = false
	}
	return m, nil
}

// openCreate opens an empty dialog. The title gets focus once the entry
// transition is over.
func (m Model) openCreate() (Model, tea.Cmd) {
	m.dialog.OpenCreate()
	m.dialogSeq++
	return m, commands.EnterComplete(m.dialogSeq)
}

// openEdit opens the dialog pre-filled with t.
func (m Model) openEdit(t task.Task) (Model, tea.Cmd) {
	m.dialog.OpenEdit(t)
	m.dialogSeq++
	return m, commands.EnterComplete(m.dialogSeq)
}

// focusedTask returns the task of the focused card.
func (m Model) focusedTask() (task.Task, bool) {
	cur := m.focus.Current()
	if cur.Region != modal.RegionBoard || cur.ID == 0 {
		return task.Task{}, false
	}
	return m.store.Find(cur.ID)
}

// moveBoard moves card focus by delta positions in the projection.
func (m *Model) moveBoard(delta int) {
	p := m.store.Project()
	if len(p.Visible) == 0 {
		return
	}
	idx := p.IndexOf(m.focus.Current().ID)
	if idx < 0 {
		idx = 0
	}
	next := idx + delta
	if next < 0 || next >= len(p.Visible) {
		return
	}
	m.focusBoard(next)
}

// rowStride is how many cards one row down is.
func (m Model) rowStride() int {
	if m.store.Layout() == board.LayoutList {
		return 1
	}
	return view.GridColumns(m.layoutCache.MainW)
}

// focusSidebar focuses entry i, clamped to the sidebar.
func (m *Model) focusSidebar(i int) {
	i = min(max(i, 0), len(sidebarLabels)-1)
	m.focus.Focus(modal.Target{Region: modal.RegionSidebar, ID: int64(i)})
}

// activateSidebar selects entry i. Dashboard and My tasks show every task
// again; Upcoming only highlights.
func (m *Model) activateSidebar(i int) {
	m.sidebarActive = i
	if i == sidebarDashboard || i == sidebarMyTasks {
		m.clearSearch()
	}
}

// clearSearch empties the search box and the store's search term.
func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.store.ClearSearch()
}
