// Package view provides rendering helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	ToggleActive      lipgloss.Style
	ToggleInactive    lipgloss.Style
}

// TaskFormStyles returns the modal styles needed for the task form.
func (s ModalStyleSet) TaskFormStyles() TaskFormStyles {
	return TaskFormStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		ToggleActive:      s.ToggleActive,
		ToggleInactive:    s.ToggleInactive,
		ErrorStyle:        s.ErrorStyle,
		HintStyle:         s.HintStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
	}
}

// HelpStyles returns the modal styles needed for the key reference.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		BodyStyle: s.BodyStyle,
	}
}
