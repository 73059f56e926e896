package tui

import "github.com/charmbracelet/lipgloss"

const (
	headerHeight = 1
	footerHeight = 1
	searchHeight = 3
	columnGap    = 1

	// minSidebarTotalWidth is the narrowest screen that still shows the
	// sidebar.
	minSidebarTotalWidth = 60
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	BodyH    int
	SidebarW int
	MainW    int
	BoardH   int

	FooterStyle lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	bodyH := max(0, innerH-headerHeight-footerHeight)

	sidebarW := 0
	mainW := innerW
	if innerW >= minSidebarTotalWidth {
		sidebarW = sidebarWidth
		mainW = innerW - sidebarW - columnGap
	}

	boardH := max(0, bodyH-searchHeight)

	footerStyle := styles.FooterStyle.Width(innerW)

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		BodyH:       bodyH,
		SidebarW:    sidebarW,
		MainW:       mainW,
		BoardH:      boardH,
		FooterStyle: footerStyle,
	}
}
