package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/taskboard/internal/modal"
)

const (
	formInputWidth = 52
	formDescHeight = 3
	titleCharLimit = 256
	descCharLimit  = 2000
)

// taskForm holds the dialog inputs. It implements modal.Form.
type taskForm struct {
	title     textinput.Model
	desc      textarea.Model
	completed bool
	invalid   bool
	saving    bool
}

func newTaskForm(styles *Styles) *taskForm {
	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.CharLimit = titleCharLimit
	title.Width = formInputWidth
	title.Prompt = ""
	title.PlaceholderStyle = styles.ModalPlaceholderStyle
	title.TextStyle = styles.ModalInputTextStyle
	title.PromptStyle = styles.ModalInputTextStyle
	title.Cursor.Style = styles.ModalInputCursorStyle
	title.Cursor.TextStyle = styles.ModalInputTextStyle

	desc := textarea.New()
	desc.Placeholder = "Optional details"
	desc.CharLimit = descCharLimit
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetWidth(formInputWidth)
	desc.SetHeight(formDescHeight)
	areaStyle := textarea.Style{
		Base:        styles.ModalInputTextStyle,
		CursorLine:  styles.ModalInputTextStyle,
		EndOfBuffer: styles.ModalInputTextStyle,
		Placeholder: styles.ModalPlaceholderStyle,
		Prompt:      styles.ModalInputTextStyle,
		Text:        styles.ModalInputTextStyle,
	}
	desc.FocusedStyle = areaStyle
	desc.BlurredStyle = areaStyle
	desc.Cursor.Style = styles.ModalInputCursorStyle

	return &taskForm{title: title, desc: desc}
}

// Fields returns the raw input values.
func (f *taskForm) Fields() modal.Fields {
	return modal.Fields{
		Title:       f.title.Value(),
		Description: f.desc.Value(),
		Completed:   f.completed,
	}
}

// SetFields replaces the input values.
func (f *taskForm) SetFields(fields modal.Fields) {
	f.title.SetValue(fields.Title)
	f.title.CursorEnd()
	f.desc.SetValue(fields.Description)
	f.completed = fields.Completed
	f.saving = false
}

// SetTitleInvalid marks or clears the title field.
func (f *taskForm) SetTitleInvalid(invalid bool) {
	f.invalid = invalid
}

// focusRegion moves the input cursor to the field for r and blurs the rest.
func (f *taskForm) focusRegion(r modal.Region) {
	if r == modal.RegionFormTitle {
		f.title.Focus()
	} else {
		f.title.Blur()
	}
	if r == modal.RegionFormDescription {
		f.desc.Focus()
	} else {
		f.desc.Blur()
	}
}

// update forwards msg to the field for r.
func (f *taskForm) update(msg tea.Msg, r modal.Region) tea.Cmd {
	var cmd tea.Cmd
	switch r {
	case modal.RegionFormTitle:
		f.title, cmd = f.title.Update(msg)
		if f.invalid && f.title.Value() != "" {
			f.invalid = false
		}
	case modal.RegionFormDescription:
		f.desc, cmd = f.desc.Update(msg)
	}
	return cmd
}

// formRegions is the tab order inside the dialog.
var formRegions = []modal.Region{
	modal.RegionFormTitle,
	modal.RegionFormDescription,
	modal.RegionFormCompleted,
}

// cycleFormRegion returns the region delta steps away from r.
func cycleFormRegion(r modal.Region, delta int) modal.Region {
	idx := 0
	for i, fr := range formRegions {
		if fr == r {
			idx = i
			break
		}
	}
	n := len(formRegions)
	return formRegions[((idx+delta)%n+n)%n]
}

func isFormRegion(r modal.Region) bool {
	return r == modal.RegionFormTitle || r == modal.RegionFormDescription || r == modal.RegionFormCompleted
}
