package view

import "github.com/charmbracelet/lipgloss"

// SearchStyles groups styles for the search box.
type SearchStyles struct {
	Box        lipgloss.Style
	BoxFocused lipgloss.Style
}

// RenderSearch renders the rendered text input inside a bordered box of
// the given outer width.
func RenderSearch(width int, input string, focused bool, styles SearchStyles) string {
	style := styles.Box
	if focused {
		style = styles.BoxFocused
	}
	frameW, _ := style.GetFrameSize()
	innerW := max(0, width-frameW)
	return style.
		Width(max(0, width-style.GetHorizontalBorderSize())).
		Render(Fit(input, innerW, ""))
}
