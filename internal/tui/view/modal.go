// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles of the dialog frame and its buttons.
type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// Button is a key hint in a dialog footer, rendered as "[key] label".
type Button struct {
	Key   string
	Label string
}

func (b Button) String() string {
	return "[" + b.Key + "] " + b.Label
}

// NoActiveButton renders every button in the plain style.
const NoActiveButton = -1

// DialogModel is everything a dialog frame shows.
type DialogModel struct {
	Title   string
	Body    string
	Buttons []Button
	// Active is the index of the highlighted button, the one enter or the
	// first key answers with.
	Active int
	// Compact drops the button padding so long rows fit the task form.
	Compact bool
}

// RenderDialog renders a framed dialog: title bar, body, then the button
// row. Empty parts are skipped.
func RenderDialog(model DialogModel, styles ModalStyles) string {
	parts := []string{styles.Header.Render(styles.Title.Render(model.Title))}
	if model.Body != "" {
		parts = append(parts, model.Body)
	}
	if len(model.Buttons) > 0 {
		row := renderButtons(model.Buttons, model.Active, model.Compact, styles)
		parts = append(parts, styles.Footer.Render(row))
	}
	return styles.Frame.Render(strings.Join(parts, "\n\n"))
}

func renderButtons(buttons []Button, active int, compact bool, styles ModalStyles) string {
	plain, highlighted := styles.Button, styles.ButtonActive
	if compact {
		plain = plain.Padding(0, 1)
		highlighted = highlighted.Padding(0, 1)
	}
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		style := plain
		if i == active {
			style = highlighted
		}
		parts[i] = style.Render(b.String())
	}
	return strings.Join(parts, styles.Body.Render(" "))
}
