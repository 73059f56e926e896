// Package view provides view composition helpers for the TUI.
package view

// OverlayRenderer renders modal overlays and the toast stack on top of
// base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
	Stack(base string, width, height int, content string) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	Toasts           string
	Overlay          OverlayRenderer
	EmptyPlaceholder string
}

// Render composes the final view output. Toasts stay visible above an
// open modal.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	out := state.BaseContent
	if state.Overlay == nil {
		return out
	}
	if state.ShowModal {
		out = state.Overlay.Render(out, state.Width, state.Height, state.ModalContent)
	}
	if state.Toasts != "" {
		out = state.Overlay.Stack(out, state.Width, state.Height, state.Toasts)
	}
	return out
}
