// Package view provides rendering helpers for the TUI.
package view

// Button rows of the three dialogs.
var (
	TaskFormButtons = []Button{
		{Key: "ctrl+s", Label: "Save"},
		{Key: "tab", Label: "Next field"},
		{Key: "esc", Label: "Cancel"},
	}
	ConfirmDeleteButtons = []Button{
		{Key: "y", Label: "Delete"},
		{Key: "n/esc", Label: "Cancel"},
	}
	HelpButtons = []Button{
		{Key: "esc/?", Label: "Close"},
	}
)

// TaskFormDialog frames the task form. Save is not highlighted while the
// form is saving.
func TaskFormDialog(edit, saving bool, body string) DialogModel {
	title := "NEW TASK"
	if edit {
		title = "EDIT TASK"
	}
	active := 0
	if saving {
		active = NoActiveButton
	}
	return DialogModel{
		Title:   title,
		Body:    body,
		Buttons: TaskFormButtons,
		Active:  active,
		Compact: true,
	}
}

// ConfirmDeleteDialog frames the delete confirmation.
func ConfirmDeleteDialog(body string) DialogModel {
	return DialogModel{Title: "DELETE TASK", Body: body, Buttons: ConfirmDeleteButtons}
}

// HelpDialog frames the key reference.
func HelpDialog(body string) DialogModel {
	return DialogModel{Title: "KEYBOARD SHORTCUTS", Body: body, Buttons: HelpButtons}
}
