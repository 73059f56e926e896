package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/modal"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.showHelp || m.confirming || m.dialog.IsOpen()

	overlay := m.overlay
	if overlay.Active() != showModal {
		overlay.Toggle()
	}
	overlay.SetBackground(m.styles.ModalBackdropColor)

	modalContent := ""
	if showModal {
		modalContent = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modalContent,
		ShowModal:        showModal,
		Toasts:           m.renderToasts(),
		Overlay:          overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}
	bg := m.styles.colorBg
	p := m.store.Project()
	focus := m.focus.Current()

	header := view.RenderHeader(layout.InnerW, view.HeaderModel{
		Title:   appTitle,
		Stats:   p.Stats,
		Layout:  p.Layout,
		Pending: m.store.Pending(),
		Spinner: m.spinner.View(),
	}, m.styleCache.Header)

	searchBox := view.RenderSearch(layout.MainW, m.search.View(), focus.Region == modal.RegionSearch, m.styleCache.Search)
	main := lipgloss.JoinVertical(lipgloss.Left, searchBox, m.renderBoardArea(layout, p))

	body := main
	if layout.SidebarW > 0 {
		sidebar := view.RenderSidebar(layout.SidebarW, layout.BodyH, m.sidebarItems(), m.styleCache.Sidebar)
		gap := view.PlaceBox(columnGap, layout.BodyH, lipgloss.Top, "", bg)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, gap, main)
	}

	footer := view.RenderFooter(view.FooterModel{
		InnerW:   layout.InnerW,
		HelpText: m.footerHelp(),
		Style:    layout.FooterStyle,
		Bg:       bg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, bg)
}

// renderBoardArea renders the cards, or the loading, retry or empty state.
func (m Model) renderBoardArea(layout LayoutCache, p board.Projection) string {
	w, h := layout.MainW, layout.BoardH
	states := m.styleCache.States

	switch {
	case m.store.Generation() == 0 && m.store.Status() != board.StatusFailed:
		return view.RenderLoading(w, h, m.spinner.View(), states)
	case m.store.Status() == board.StatusFailed && m.store.Len() == 0:
		return view.RenderRetry(w, h, states)
	case p.IsEmpty():
		return view.RenderEmpty(w, h, p, states)
	}

	return view.RenderBoard(m.boardModel(w, h, p), m.styleCache.Board)
}

func (m Model) boardModel(width, height int, p board.Projection) view.BoardModel {
	focus := m.focus.Current()
	focused := -1
	cards := make([]view.CardModel, len(p.Visible))
	for i, t := range p.Visible {
		isFocused := focus.Region == modal.RegionBoard && focus.ID == t.ID
		if isFocused {
			focused = i
		}
		cards[i] = view.CardModel{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Focused:     isFocused,
		}
	}
	return view.BoardModel{
		Width:   width,
		Height:  height,
		Layout:  p.Layout,
		Cards:   cards,
		Focused: focused,
	}
}

func (m Model) sidebarItems() []view.SidebarItem {
	focus := m.focus.Current()
	items := make([]view.SidebarItem, len(sidebarLabels))
	for i, label := range sidebarLabels {
		items[i] = view.SidebarItem{
			Label:   label,
			Active:  i == m.sidebarActive,
			Focused: focus.Region == modal.RegionSidebar && int(focus.ID) == i,
		}
	}
	return items
}

func (m Model) footerHelp() string {
	if m.dialog.IsOpen() {
		return m.help.ShortHelpView(dialogKeys{m.keys}.ShortHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) renderToasts() string {
	items := m.queue.Items()
	if len(items) == 0 {
		return ""
	}
	toasts := make([]view.ToastModel, len(items))
	for i, t := range items {
		toasts[i] = view.ToastModel{Message: t.Message, Error: t.Kind == notify.KindError}
	}
	return view.RenderToasts(overlayMaxWidth, toasts, m.styleCache.Toasts)
}
