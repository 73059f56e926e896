// Package tui provides the terminal user interface for taskboard.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/taskboard/internal/tui/theme"
)

// sidebarWidth is the outer width of the navigation column.
const sidebarWidth = 20

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorActive      lipgloss.Color
	colorDone        lipgloss.Color
	colorSuccess     lipgloss.Color
	colorError       lipgloss.Color
	colorPriority    lipgloss.Color

	// Header
	HeaderStyle     lipgloss.Style
	TitleStyle      lipgloss.Style
	StatStyle       lipgloss.Style
	StatDoneStyle   lipgloss.Style
	StatActiveStyle lipgloss.Style
	BadgeStyle      lipgloss.Style
	LayoutStyle     lipgloss.Style

	// Sidebar
	SidebarStyle        lipgloss.Style
	SidebarHeadingStyle lipgloss.Style
	SidebarItemStyle    lipgloss.Style
	SidebarActiveStyle  lipgloss.Style
	SidebarFocusedStyle lipgloss.Style

	// Search box
	SearchStyle        lipgloss.Style
	SearchFocusedStyle lipgloss.Style
	SearchTextStyle    lipgloss.Style
	SearchPlaceholder  lipgloss.Style

	// Cards and rows
	CardStyle            lipgloss.Style
	CardDoneStyle        lipgloss.Style
	CardFocusedStyle     lipgloss.Style
	CardDoneFocusedStyle lipgloss.Style
	RowStyle             lipgloss.Style
	RowFocusedStyle      lipgloss.Style
	CardTitleStyle       lipgloss.Style
	CardTitleDoneStyle   lipgloss.Style
	CardDescStyle        lipgloss.Style
	CheckStyle           lipgloss.Style
	CheckDoneStyle       lipgloss.Style
	PriorityBadgeStyle   lipgloss.Style
	HintStyle            lipgloss.Style

	// Empty, loading and retry states
	StateMessageStyle lipgloss.Style
	StateErrorStyle   lipgloss.Style
	StateHintStyle    lipgloss.Style

	// Toasts
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	// Footer help
	FooterStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputInvalidStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ToggleActiveStyle      lipgloss.Style
	ToggleInactiveStyle    lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorActive = palette.Active
	s.colorDone = palette.Done
	s.colorSuccess = palette.Success
	s.colorError = palette.Error
	s.colorPriority = palette.Priority

	// Header
	s.HeaderStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.StatStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatDoneStyle = s.StatStyle.
		Foreground(s.colorDone)

	s.StatActiveStyle = s.StatStyle.
		Foreground(s.colorActive)

	s.BadgeStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.LayoutStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Sidebar
	s.SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Padding(0, 1)

	s.SidebarHeadingStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Bold(true)

	s.SidebarItemStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.SidebarActiveStyle = s.SidebarItemStyle.
		Foreground(s.colorAccent).
		Bold(true)

	s.SidebarFocusedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	// Search box
	s.SearchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.SearchFocusedStyle = s.SearchStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorBgSelection)

	s.SearchTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.SearchPlaceholder = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	// Cards: open tasks on the active tint, completed tasks muted
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderBackground(s.colorBg).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.CardStyle = card.
		BorderForeground(s.colorBgSelection).
		Background(palette.ActiveBg)

	s.CardDoneStyle = card.
		BorderForeground(s.colorBgSelection).
		Background(palette.DoneBg)

	s.CardFocusedStyle = card.
		BorderForeground(s.colorAccent).
		Background(palette.ActiveBgAlt)

	s.CardDoneFocusedStyle = card.
		BorderForeground(s.colorAccent).
		Background(palette.DoneBgAlt)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.RowFocusedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.CardTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.CardTitleDoneStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Strikethrough(true)

	s.CardDescStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CheckStyle = lipgloss.NewStyle().
		Foreground(s.colorActive)

	s.CheckDoneStyle = lipgloss.NewStyle().
		Foreground(s.colorDone).
		Bold(true)

	s.PriorityBadgeStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnPriority).
		Background(s.colorPriority).
		Padding(0, 1)

	s.HintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	// States
	s.StateMessageStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.StateErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorError).
		Background(s.colorBg).
		Bold(true)

	s.StateHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Toasts
	s.ToastSuccessStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSuccess).
		Background(s.colorSuccess).
		Padding(0, 1)

	s.ToastErrorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnError).
		Background(s.colorError).
		Bold(true).
		Padding(0, 1)

	// Footer
	s.FooterStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Padding(0, 1)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(60).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(0, 1).
		Width(54)

	s.ModalInputFocusedStyle = s.ModalInputStyle.
		BorderForeground(modalHighlight).
		Background(modalPanel)

	s.ModalInputInvalidStyle = s.ModalInputStyle.
		BorderForeground(s.colorError)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorError).
		Background(modalBg).
		PaddingLeft(1)

	s.ToggleActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Bold(true).
		Padding(0, 1)

	s.ToggleInactiveStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modalMuted).
		Padding(0, 1)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingLeft(1).
		PaddingRight(1)

	return s
}
