package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/taskboard/internal/board"
)

// Priority is shown on every card. Tasks carry no priority of their own.
const Priority = "medium"

const (
	cardHeight   = 5
	cardGap      = 1
	minCardWidth = 30
	maxColumns   = 4
)

// CardModel is one task as the board shows it.
type CardModel struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	Focused     bool
}

// BoardModel contains everything needed to render the board area.
type BoardModel struct {
	Width  int
	Height int
	Layout board.Layout
	Cards  []CardModel
	// Focused is the index of the focused card, -1 when the board is not
	// focused.
	Focused int
}

// BoardStyles groups styles for cards and rows.
type BoardStyles struct {
	Bg              lipgloss.Color
	Card            lipgloss.Style
	CardDone        lipgloss.Style
	CardFocused     lipgloss.Style
	CardDoneFocused lipgloss.Style
	Row             lipgloss.Style
	RowFocused      lipgloss.Style
	Title           lipgloss.Style
	TitleDone       lipgloss.Style
	Desc            lipgloss.Style
	Check           lipgloss.Style
	CheckDone       lipgloss.Style
	Badge           lipgloss.Style
	Hint            lipgloss.Style
}

// GridColumns returns how many cards fit side by side.
func GridColumns(width int) int {
	cols := (width + cardGap) / (minCardWidth + cardGap)
	return min(max(cols, 1), maxColumns)
}

// RenderBoard renders the cards in the requested layout, scrolled so that
// the focused card is visible.
func RenderBoard(model BoardModel, styles BoardStyles) string {
	if model.Width <= 0 || model.Height <= 0 {
		return ""
	}
	var content string
	if model.Layout == board.LayoutList {
		content = renderList(model, styles)
	} else {
		content = renderGrid(model, styles)
	}
	return PlaceBox(model.Width, model.Height, lipgloss.Top, content, styles.Bg)
}

func renderGrid(model BoardModel, styles BoardStyles) string {
	cols := GridColumns(model.Width)
	cardW := (model.Width - (cols-1)*cardGap) / cols
	rows := (len(model.Cards) + cols - 1) / cols

	focusRow := 0
	if model.Focused >= 0 {
		focusRow = model.Focused / cols
	}
	visible := max(1, model.Height/cardHeight)
	start := windowStart(focusRow, visible, rows)

	gap := lipgloss.NewStyle().Background(styles.Bg).Render(strings.Repeat(" ", cardGap))
	lines := make([]string, 0, visible)
	for r := start; r < rows && r < start+visible; r++ {
		cards := make([]string, 0, cols*2)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(model.Cards) {
				break
			}
			if c > 0 {
				cards = append(cards, gap)
			}
			cards = append(cards, RenderCard(cardW, model.Cards[i], styles))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}

func renderList(model BoardModel, styles BoardStyles) string {
	focus := max(model.Focused, 0)
	start := windowStart(focus, model.Height, len(model.Cards))

	lines := make([]string, 0, model.Height)
	for i := start; i < len(model.Cards) && i < start+model.Height; i++ {
		lines = append(lines, RenderRow(model.Width, model.Cards[i], styles))
	}
	return strings.Join(lines, "\n")
}

// windowStart returns the first item of a window of size visible that
// contains focus.
func windowStart(focus, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	start := 0
	if focus >= visible {
		start = focus - visible + 1
	}
	return min(start, total-visible)
}

func cardStyle(card CardModel, styles BoardStyles) lipgloss.Style {
	switch {
	case card.Completed && card.Focused:
		return styles.CardDoneFocused
	case card.Completed:
		return styles.CardDone
	case card.Focused:
		return styles.CardFocused
	default:
		return styles.Card
	}
}

// RenderCard renders a bordered card of the given outer width: status and
// title, description, then the priority badge and action hints.
func RenderCard(width int, card CardModel, styles BoardStyles) string {
	box := cardStyle(card, styles)
	frameW, _ := box.GetFrameSize()
	innerW := max(0, width-frameW)
	bg := box.GetBackground()

	check, title := checkAndTitle(card, styles)
	check = check.Background(bg)
	title = title.Background(bg)
	sep := lipgloss.NewStyle().Background(bg).Render(" ")

	head := check.Render(checkbox(card.Completed)) + sep +
		title.Render(Fit(card.Title, max(0, innerW-4), "…"))
	desc := styles.Desc.Background(bg).Render(Fit(FirstLine(card.Description), innerW, "…"))
	foot := styles.Badge.Render(Priority) + sep + styles.Hint.Background(bg).Render("e edit · d delete")

	return box.
		Width(max(0, width-box.GetHorizontalBorderSize())).
		Render(strings.Join([]string{head, desc, Fit(foot, innerW, "")}, "\n"))
}

// RenderRow renders a single-line list entry of the given width.
func RenderRow(width int, card CardModel, styles BoardStyles) string {
	row := styles.Row
	marker := "  "
	if card.Focused {
		row = styles.RowFocused
		marker = "▸ "
	}
	bg := row.GetBackground()
	check, title := checkAndTitle(card, styles)
	sep := lipgloss.NewStyle().Background(bg).Render(" ")

	line := row.Render(marker) +
		check.Background(bg).Render(checkbox(card.Completed)) + sep +
		title.Background(bg).Render(card.Title)
	if d := FirstLine(card.Description); d != "" {
		line += styles.Desc.Background(bg).Render(" · " + d)
	}
	badge := sep + styles.Badge.Render(Priority)

	room := width - lipgloss.Width(badge)
	line = Fit(line, max(0, room), "…")
	if pad := room - lipgloss.Width(line); pad > 0 {
		line += row.Render(strings.Repeat(" ", pad))
	}
	return line + badge
}

func checkAndTitle(card CardModel, styles BoardStyles) (lipgloss.Style, lipgloss.Style) {
	if card.Completed {
		return styles.CheckDone, styles.TitleDone
	}
	return styles.Check, styles.Title
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
