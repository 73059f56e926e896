// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured or the configured
// one does not exist.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds the colors of the board, its cards and its dialogs.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Board background
	BgHighlight string `toml:"bg_highlight"` // Cards, sidebar
	BgSelection string `toml:"bg_selection"` // Focused card or row
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // Descriptions, hints, struck titles
	Accent      string `toml:"accent"`   // App title, focused borders
	Active      string `toml:"active"`   // Open tasks
	Done        string `toml:"done"`     // Completed tasks
	Success     string `toml:"success"`
	Error       string `toml:"error"` // Error toasts, invalid title
	Priority    string `toml:"priority"`

	// Dialogs: task form, delete confirmation, key reference. Each one
	// falls back to a board color when unset.
	DialogBg        string `toml:"dialog_bg"`
	DialogBorder    string `toml:"dialog_border"`
	DialogText      string `toml:"dialog_text"`
	DialogMuted     string `toml:"dialog_muted"`
	DialogHighlight string `toml:"dialog_highlight"` // Focused field and default button
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from the embedded files. Unknown names fall
// back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile(themePath(name))
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes a theme file. Every board color is required; dialog
// colors are derived when missing.
func Parse(name string, data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	if missing := t.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("theme %q: missing %s", name, strings.Join(missing, ", "))
	}
	t.fillDialog()
	return &t, nil
}

func (t *Theme) missing() []string {
	required := []struct {
		key, value string
	}{
		{"bg", t.Bg},
		{"bg_highlight", t.BgHighlight},
		{"bg_selection", t.BgSelection},
		{"fg", t.Fg},
		{"fg_muted", t.FgMuted},
		{"accent", t.Accent},
		{"active", t.Active},
		{"done", t.Done},
		{"success", t.Success},
		{"error", t.Error},
		{"priority", t.Priority},
	}
	var out []string
	for _, r := range required {
		if r.value == "" {
			out = append(out, r.key)
		}
	}
	return out
}

// DialogPalette is the resolved set of dialog colors.
type DialogPalette struct {
	Bg        string
	Border    string
	Text      string
	Muted     string
	Highlight string
}

// Dialog returns the dialog colors, falling back to board colors.
func (t *Theme) Dialog() DialogPalette {
	return DialogPalette{
		Bg:        coalesce(t.DialogBg, t.BgHighlight, t.Bg),
		Border:    coalesce(t.DialogBorder, t.Accent),
		Text:      coalesce(t.DialogText, t.Fg),
		Muted:     coalesce(t.DialogMuted, t.FgMuted),
		Highlight: coalesce(t.DialogHighlight, t.BgSelection, t.Accent),
	}
}

func (t *Theme) fillDialog() {
	d := t.Dialog()
	t.DialogBg = d.Bg
	t.DialogBorder = d.Border
	t.DialogText = d.Text
	t.DialogMuted = d.Muted
	t.DialogHighlight = d.Highlight
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func themePath(name string) string {
	return path.Join("embedded", name+".toml")
}

// Available lists the embedded themes, DefaultName first and the rest
// in alphabetical order.
func Available() []string {
	entries, err := fs.ReadDir(embeddedThemes, "embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := []string{DefaultName}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".toml")
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])
	return names
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	_, err := fs.Stat(embeddedThemes, themePath(strings.ToLower(name)))
	return err == nil
}
