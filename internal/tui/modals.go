package tui

import (
	"github.com/javiermolinar/taskboard/internal/modal"
	"github.com/javiermolinar/taskboard/internal/tui/view"
)

// renderModal renders whichever overlay is on top.
func (m Model) renderModal() string {
	modalStyles := m.styleCache.Modal
	set := m.styleCache.ModalSet

	switch {
	case m.showHelp:
		body := view.RenderHelpBody(m.help.FullHelpView(m.keys.FullHelp()), set.HelpStyles())
		return view.RenderDialog(view.HelpDialog(body), modalStyles)

	case m.confirming:
		t, ok := m.store.Find(m.confirmID)
		body := view.RenderConfirmDeleteBody(view.ConfirmDeleteModel{Title: t.Title, HasTask: ok}, set.ConfirmDeleteStyles())
		return view.RenderDialog(view.ConfirmDeleteDialog(body), modalStyles)

	default:
		return m.renderTaskForm()
	}
}

func (m Model) renderTaskForm() string {
	modalStyles := m.styleCache.Modal
	region := m.focus.Current().Region

	titleStyle := m.styles.ModalInputStyle
	switch {
	case m.form.invalid:
		titleStyle = m.styles.ModalInputInvalidStyle
	case region == modal.RegionFormTitle:
		titleStyle = m.styles.ModalInputFocusedStyle
	}
	descStyle := m.styles.ModalInputStyle
	if region == modal.RegionFormDescription {
		descStyle = m.styles.ModalInputFocusedStyle
	}

	body := view.RenderTaskFormBody(view.TaskFormModel{
		TitleValue:       m.form.title.View(),
		TitleStyle:       titleStyle,
		TitleInvalid:     m.form.invalid,
		DescValue:        m.form.desc.View(),
		DescStyle:        descStyle,
		Completed:        m.form.completed,
		CompletedFocused: region == modal.RegionFormCompleted,
		Saving:           m.form.saving,
	}, m.styleCache.ModalSet.TaskFormStyles())

	s, ok := m.dialog.Session()
	edit := ok && s.Mode == modal.ModeEdit
	return view.RenderDialog(view.TaskFormDialog(edit, m.form.saving, body), modalStyles)
}
