package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SidebarItem is one navigation entry.
type SidebarItem struct {
	Label   string
	Active  bool
	Focused bool
}

// SidebarStyles groups styles for the sidebar.
type SidebarStyles struct {
	Box     lipgloss.Style
	Heading lipgloss.Style
	Item    lipgloss.Style
	Active  lipgloss.Style
	Focused lipgloss.Style
}

// RenderSidebar renders the navigation entries in a fixed-size box.
func RenderSidebar(width, height int, items []SidebarItem, styles SidebarStyles) string {
	frameW, frameH := styles.Box.GetFrameSize()
	innerW := max(0, width-frameW)
	innerH := max(0, height-frameH)

	lines := make([]string, 0, len(items)+2)
	lines = append(lines, styles.Heading.Width(innerW).Render("VIEWS"), "")
	for _, item := range items {
		style := styles.Item
		marker := "  "
		if item.Active {
			style = styles.Active
			marker = "> "
		}
		if item.Focused {
			style = styles.Focused
		}
		lines = append(lines, style.Width(innerW).Render(Fit(marker+item.Label, innerW, "…")))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return styles.Box.
		Width(max(0, width-styles.Box.GetHorizontalBorderSize())).
		Height(max(0, height-styles.Box.GetVerticalBorderSize())).
		Render(strings.Join(lines, "\n"))
}
