package tui

import "github.com/javiermolinar/taskboard/internal/tui/view"

// StyleCache stores the style groups the view package renders with, so
// they are assembled once per theme instead of once per frame.
type StyleCache struct {
	Header   view.HeaderStyles
	Sidebar  view.SidebarStyles
	Search   view.SearchStyles
	Board    view.BoardStyles
	States   view.StateStyles
	Toasts   view.ToastStyles
	Modal    view.ModalStyles
	ModalSet view.ModalStyleSet
}

// NewStyleCache groups styles for the view package.
func NewStyleCache(styles *Styles) StyleCache {
	return StyleCache{
		Header: view.HeaderStyles{
			Bar:        styles.HeaderStyle,
			Title:      styles.TitleStyle,
			Stat:       styles.StatStyle,
			StatDone:   styles.StatDoneStyle,
			StatActive: styles.StatActiveStyle,
			Badge:      styles.BadgeStyle,
			Layout:     styles.LayoutStyle,
		},
		Sidebar: view.SidebarStyles{
			Box:     styles.SidebarStyle,
			Heading: styles.SidebarHeadingStyle,
			Item:    styles.SidebarItemStyle,
			Active:  styles.SidebarActiveStyle,
			Focused: styles.SidebarFocusedStyle,
		},
		Search: view.SearchStyles{
			Box:        styles.SearchStyle,
			BoxFocused: styles.SearchFocusedStyle,
		},
		Board: view.BoardStyles{
			Bg:              styles.colorBg,
			Card:            styles.CardStyle,
			CardDone:        styles.CardDoneStyle,
			CardFocused:     styles.CardFocusedStyle,
			CardDoneFocused: styles.CardDoneFocusedStyle,
			Row:             styles.RowStyle,
			RowFocused:      styles.RowFocusedStyle,
			Title:           styles.CardTitleStyle,
			TitleDone:       styles.CardTitleDoneStyle,
			Desc:            styles.CardDescStyle,
			Check:           styles.CheckStyle,
			CheckDone:       styles.CheckDoneStyle,
			Badge:           styles.PriorityBadgeStyle,
			Hint:            styles.HintStyle,
		},
		States: view.StateStyles{
			Bg:      styles.colorBg,
			Message: styles.StateMessageStyle,
			Error:   styles.StateErrorStyle,
			Hint:    styles.StateHintStyle,
		},
		Toasts: view.ToastStyles{
			Success: styles.ToastSuccessStyle,
			Error:   styles.ToastErrorStyle,
		},
		Modal: view.ModalStyles{
			Frame:        styles.ModalStyle,
			Header:       styles.ModalHeaderStyle,
			Title:        styles.ModalTitleStyle,
			Body:         styles.ModalBodyStyle,
			Footer:       styles.ModalFooterStyle,
			Button:       styles.ModalButtonStyle,
			ButtonActive: styles.ModalButtonActiveStyle,
		},
		ModalSet: view.ModalStyleSet{
			BodyStyle:         styles.ModalBodyStyle,
			SectionTitleStyle: styles.ModalSectionTitleStyle,
			ErrorStyle:        styles.ModalErrorStyle,
			HintStyle:         styles.ModalHintStyle,
			ToggleActive:      styles.ToggleActiveStyle,
			ToggleInactive:    styles.ToggleInactiveStyle,
		},
	}
}
