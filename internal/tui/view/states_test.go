package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/task"
)

func TestEmptyMessage(t *testing.T) {
	noTasks := board.Project(nil, board.FilterAll, "", board.LayoutGrid)
	headline, hint := EmptyMessage(noTasks)
	if headline != "No tasks yet" || !strings.Contains(hint, "press n") {
		t.Errorf("no tasks = %q / %q", headline, hint)
	}

	tasks := []task.Task{{ID: 1, Title: "Buy milk"}}
	noResults := board.Project(tasks, board.FilterAll, "zzz", board.LayoutGrid)
	headline, hint = EmptyMessage(noResults)
	if headline != `No tasks match "zzz"` || !strings.Contains(hint, "clear search") {
		t.Errorf("no results = %q / %q", headline, hint)
	}
}

func TestRenderRetry_OffersRetry(t *testing.T) {
	out := ansi.Strip(RenderRetry(40, 7, StateStyles{}))
	if !strings.Contains(out, "Error loading tasks") || !strings.Contains(out, "press r to retry") {
		t.Fatalf("retry state = %q", out)
	}
	if got := len(strings.Split(out, "\n")); got != 7 {
		t.Errorf("height = %d, want 7", got)
	}
}

func TestRenderToasts_OldestFirst(t *testing.T) {
	out := ansi.Strip(RenderToasts(30, []ToastModel{
		{Message: "Task created"},
		{Message: "Error loading tasks", Error: true},
	}, ToastStyles{}))

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0] != "✓ Task created" || lines[1] != "✗ Error loading tasks" {
		t.Errorf("toasts = %q", lines)
	}
}

func TestRenderHeader_PendingBadge(t *testing.T) {
	model := HeaderModel{
		Title:  "taskboard",
		Stats:  board.Stats{Total: 3, Completed: 1, Active: 2},
		Layout: board.LayoutList,
	}
	idle := ansi.Strip(RenderHeader(100, model, HeaderStyles{}))
	if strings.Contains(idle, "syncing") {
		t.Errorf("idle header shows badge: %q", idle)
	}
	for _, want := range []string{"3 total", "1 completed", "2 active", "[list]"} {
		if !strings.Contains(idle, want) {
			t.Errorf("header missing %q: %q", want, idle)
		}
	}

	model.Pending = true
	if busy := ansi.Strip(RenderHeader(100, model, HeaderStyles{})); !strings.Contains(busy, "syncing") {
		t.Errorf("pending header = %q", busy)
	}
}
