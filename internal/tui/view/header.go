package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/taskboard/internal/board"
)

// HeaderModel contains the values shown in the header bar.
type HeaderModel struct {
	Title   string
	Stats   board.Stats
	Layout  board.Layout
	Pending bool
	// Spinner is the rendered spinner frame shown next to the pending badge.
	Spinner string
}

// HeaderStyles groups styles for the header bar.
type HeaderStyles struct {
	Bar        lipgloss.Style
	Title      lipgloss.Style
	Stat       lipgloss.Style
	StatDone   lipgloss.Style
	StatActive lipgloss.Style
	Badge      lipgloss.Style
	Layout     lipgloss.Style
}

// RenderHeader renders the title on the left and stats, the pending badge
// and the layout indicator on the right.
func RenderHeader(width int, model HeaderModel, styles HeaderStyles) string {
	sep := styles.Bar.Render("  ")
	left := styles.Title.Render(model.Title)

	parts := []string{
		styles.Stat.Render(fmt.Sprintf("%d total", model.Stats.Total)),
		styles.StatDone.Render(fmt.Sprintf("%d completed", model.Stats.Completed)),
		styles.StatActive.Render(fmt.Sprintf("%d active", model.Stats.Active)),
	}
	if model.Pending {
		badge := "syncing"
		if model.Spinner != "" {
			badge = model.Spinner + " " + badge
		}
		parts = append(parts, styles.Badge.Render(badge))
	}
	parts = append(parts, styles.Layout.Render(LayoutLabel(model.Layout)))
	right := strings.Join(parts, sep)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return Fit(left+sep+right, width, "")
	}
	return left + styles.Bar.Render(strings.Repeat(" ", gap)) + right
}

// LayoutLabel names a layout for display.
func LayoutLabel(l board.Layout) string {
	if l == board.LayoutList {
		return "[list]"
	}
	return "[grid]"
}
