// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Title   string
	HasTask bool
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	if model.HasTask {
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf("%q", model.Title)) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render("Are you sure you want to delete this task?"))

	return body.String()
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	BodyStyle lipgloss.Style
}

// RenderHelpBody renders the full key reference produced by bubbles/help.
func RenderHelpBody(helpView string, styles HelpStyles) string {
	return styles.BodyStyle.Render(helpView)
}
