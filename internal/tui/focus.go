package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/modal"
)

// Sidebar entries. The first two show every task, Upcoming only
// highlights.
const (
	sidebarDashboard = iota
	sidebarMyTasks
	sidebarUpcoming
)

var sidebarLabels = []string{"Dashboard", "My tasks", "Upcoming"}

// focusRing tracks the focused element. It implements modal.Focuser.
type focusRing struct {
	store   *board.Store
	form    *taskForm
	search  *textinput.Model
	current modal.Target

	// formOpen reports whether the dialog is on screen.
	formOpen func() bool
}

func newFocusRing(store *board.Store, form *taskForm, search *textinput.Model) *focusRing {
	return &focusRing{
		store:    store,
		form:     form,
		search:   search,
		current:  modal.Target{Region: modal.RegionBoard},
		formOpen: func() bool { return false },
	}
}

// Current returns the focused element.
func (f *focusRing) Current() modal.Target {
	return f.current
}

// Focus moves focus to t and updates the text inputs' cursors.
func (f *focusRing) Focus(t modal.Target) {
	prev := f.current
	f.current = t

	if t.Region == modal.RegionSearch {
		f.search.Focus()
	} else {
		f.search.Blur()
	}
	f.form.focusRegion(t.Region)

	if prev != t {
		LogFocusChange(prev, t)
	}
}

// Attached reports whether t is still on screen.
func (f *focusRing) Attached(t modal.Target) bool {
	switch t.Region {
	case modal.RegionBoard:
		return t.ID == 0 || f.store.Project().IndexOf(t.ID) >= 0
	case modal.RegionSidebar:
		return t.ID >= 0 && int(t.ID) < len(sidebarLabels)
	case modal.RegionSearch:
		return true
	case modal.RegionFormTitle, modal.RegionFormDescription, modal.RegionFormCompleted:
		return f.formOpen()
	default:
		return false
	}
}
