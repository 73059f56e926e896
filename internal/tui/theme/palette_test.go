package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Active:      "#112233",
		Done:        "#445566",
		Success:     "#00ff00",
		Error:       "#ff0044",
		Priority:    "#ff8800",
	}
}

func TestNewPalette_CardShades(t *testing.T) {
	base := darkTheme()

	palette := NewPalette(base)

	if palette.ActiveBg != lipgloss.Color(darkenColor(base.Active)) {
		t.Fatalf("ActiveBg = %q, want %q", palette.ActiveBg, darkenColor(base.Active))
	}
	if palette.DoneBg != lipgloss.Color(muteColor(base.Done)) {
		t.Fatalf("DoneBg = %q, want %q", palette.DoneBg, muteColor(base.Done))
	}
	if palette.ActiveBgAlt != lipgloss.Color(alternateShade(darkenColor(base.Active), false)) {
		t.Fatalf("ActiveBgAlt = %q, want %q", palette.ActiveBgAlt, alternateShade(darkenColor(base.Active), false))
	}
	if palette.DoneBgAlt != lipgloss.Color(alternateShade(muteColor(base.Done), false)) {
		t.Fatalf("DoneBgAlt = %q, want %q", palette.DoneBgAlt, alternateShade(muteColor(base.Done), false))
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := darkTheme()

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
}

func TestNewPalette_LightThemeInvertsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Active:      "#1d8a8a",
		Done:        "#2f8f2f",
		Success:     "#2f8f2f",
		Error:       "#c2410c",
		Priority:    "#c97b00",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.ActiveBg)) <= relativeLuminance(base.Active) {
		t.Fatalf("ActiveBg luminance = %f, want greater than Active", relativeLuminance(string(palette.ActiveBg)))
	}
	if relativeLuminance(string(palette.DoneBg)) <= relativeLuminance(base.Done) {
		t.Fatalf("DoneBg luminance = %f, want greater than Done", relativeLuminance(string(palette.DoneBg)))
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
