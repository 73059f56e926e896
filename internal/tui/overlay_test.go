package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayToggle(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}

	overlay.Toggle()
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active after toggle")
	}

	overlay.Toggle()
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive after second toggle")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	got := overlay.Render(base, 10, 2, "content")
	if got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderAddsOverlay(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.Toggle()

	width := 30
	height := 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	content := "NEW TASK"
	got := overlay.Render(base, width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	boxW, boxH := overlay.boxSize(width, height)
	if boxW <= 0 || boxH <= 0 {
		t.Fatalf("expected non-zero box size")
	}
	top := (height - boxH) / 2
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlay.bgColor))).String()
	stripped := ansi.Strip(got)
	if !strings.Contains(stripped, content) {
		t.Fatalf("expected rendered content to include dialog text")
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth != width {
			t.Fatalf("expected line width %d, got %d", width, lineWidth)
		}

		hasBg := strings.Contains(line, bgSeq)
		if i >= top && i < top+boxH {
			if !hasBg {
				t.Fatalf("expected overlay background on line %d", i)
			}
		} else if hasBg {
			t.Fatalf("expected no overlay background on line %d", i)
		}
	}
}

func TestOverlayRenderUsesBackgroundColor(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#123456"))
	overlay.Toggle()

	width := 20
	height := 6
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Render(base, width, height, "x")

	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(overlay.bgColor))).String()
	if !strings.Contains(got, bgSeq) {
		t.Fatalf("expected overlay background sequence in output")
	}
}

func TestOverlayStackPlacesToastsTopRight(t *testing.T) {
	overlay := NewOverlayModel()

	width := 30
	height := 6
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Stack(base, width, height, "Task created\nTask deleted")

	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	if lines[0] != row {
		t.Errorf("first line should stay untouched, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "Task created..") {
		t.Errorf("expected toast right-aligned with margin, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "Task deleted..") {
		t.Errorf("expected second toast below the first, got %q", lines[2])
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestOverlayStackWorksWhileInactive(t *testing.T) {
	overlay := NewOverlayModel()
	got := overlay.Stack("base", 20, 3, "hello")
	if !strings.Contains(ansi.Strip(got), "hello") {
		t.Fatalf("expected toast drawn without an active dialog")
	}
}
