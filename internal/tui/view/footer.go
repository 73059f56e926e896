package view

import "github.com/charmbracelet/lipgloss"

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW   int
	HelpText string
	Style    lipgloss.Style
	Bg       lipgloss.Color
}

// RenderFooter renders the one-line key hint bar.
func RenderFooter(model FooterModel) string {
	if model.InnerW <= 0 {
		return ""
	}
	return footerLine(model.InnerW, model.Style, model.HelpText)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(0, width-frameW)
	style = style.Width(width)
	if contentWidth > 0 {
		content = Fit(content, contentWidth, "")
	}
	return style.Render(content)
}
