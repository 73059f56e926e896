// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TaskFormModel contains the fields needed to render the task form body.
type TaskFormModel struct {
	TitleValue       string
	TitleStyle       lipgloss.Style
	TitleInvalid     bool
	DescValue        string
	DescStyle        lipgloss.Style
	Completed        bool
	CompletedFocused bool
	Saving           bool
}

// TaskFormStyles groups styles for the task form body.
type TaskFormStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	ToggleActive      lipgloss.Style
	ToggleInactive    lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderTaskFormBody renders the modal body for the task form.
func RenderTaskFormBody(model TaskFormModel, styles TaskFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.SectionTitleStyle.Render("TITLE") + "\n")
	body.WriteString(model.TitleStyle.Render(model.TitleValue) + "\n")
	if model.TitleInvalid {
		body.WriteString(styles.ErrorStyle.Render("Title is required") + "\n")
	}
	body.WriteString("\n")

	body.WriteString(styles.SectionTitleStyle.Render("DESCRIPTION") + "\n")
	body.WriteString(model.DescStyle.Render(model.DescValue) + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("STATUS") + "\n")
	completed, active := styles.ToggleActive, styles.ToggleInactive
	if !model.Completed {
		completed, active = styles.ToggleInactive, styles.ToggleActive
	}
	body.WriteString(active.Render("Active") + sep + completed.Render("Completed"))
	if model.CompletedFocused {
		body.WriteString(sep + styles.HintStyle.Render("space to toggle"))
	}
	if model.Saving {
		body.WriteString("\n\n" + styles.HintStyle.Render("Saving..."))
	}
	body.WriteString("\n")

	return body.String()
}
