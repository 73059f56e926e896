package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/taskboard/internal/board"
)

// StateStyles groups styles for the loading, retry and empty states.
type StateStyles struct {
	Bg      lipgloss.Color
	Message lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// RenderLoading renders the spinner shown while the first fetch is pending.
func RenderLoading(width, height int, spinner string, styles StateStyles) string {
	body := styles.Message.Render(spinner + " Loading tasks...")
	return center(width, height, body, styles.Bg)
}

// RenderRetry renders the failed-load state.
func RenderRetry(width, height int, styles StateStyles) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Error.Render("Error loading tasks"),
		"",
		styles.Hint.Render("press r to retry"),
	)
	return center(width, height, body, styles.Bg)
}

// EmptyMessage returns the headline and hint for an empty projection.
func EmptyMessage(p board.Projection) (string, string) {
	if p.CanClearSearch() {
		return fmt.Sprintf("No tasks match %q", p.Search), "press esc to clear search"
	}
	return "No tasks yet", "press n to create one"
}

// RenderEmpty renders the empty state of a projection.
func RenderEmpty(width, height int, p board.Projection, styles StateStyles) string {
	headline, hint := EmptyMessage(p)
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Message.Render(headline),
		"",
		styles.Hint.Render(hint),
	)
	return center(width, height, body, styles.Bg)
}

func center(width, height int, body string, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return body
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, width, height, bg)
}
