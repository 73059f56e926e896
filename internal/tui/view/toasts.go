package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ToastModel is one visible notification.
type ToastModel struct {
	Message string
	Error   bool
}

// ToastStyles groups styles for the notification stack.
type ToastStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
}

// RenderToasts stacks toasts oldest first, each at most maxWidth cells wide.
func RenderToasts(maxWidth int, toasts []ToastModel, styles ToastStyles) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := styles.Success
		icon := "✓ "
		if t.Error {
			style = styles.Error
			icon = "✗ "
		}
		frameW, _ := style.GetFrameSize()
		lines = append(lines, style.Render(Fit(icon+t.Message, max(0, maxWidth-frameW), "…")))
	}
	return strings.Join(lines, "\n")
}
