package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/task"
)

const (
	symbolDone   = "✓"
	symbolActive = "○"

	// rowOverhead is the width of "  ○ #NNN  " before the title.
	rowOverhead = 10

	minDescWidth = 10
)

// parseID parses a task ID argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %w", task.ErrInvalidID)
	}
	return id, nil
}

func statusSymbol(completed bool) string {
	if completed {
		return formatDone(symbolDone)
	}
	return formatActive(symbolActive)
}

// printTaskRow prints one task on a single line, truncating the
// description to what is left of width.
func printTaskRow(w io.Writer, t task.Task, width int) {
	title := t.Title
	if t.Completed {
		title = formatDone(title)
	}
	line := fmt.Sprintf("  %s %s %s", statusSymbol(t.Completed), formatMuted(fmt.Sprintf("#%d", t.ID)), title)

	if t.Description != "" {
		avail := width - rowOverhead - ansi.StringWidth(t.Title) - 3
		if avail >= minDescWidth {
			desc := strings.Join(strings.Fields(t.Description), " ")
			desc = ansi.Truncate(desc, avail, "...")
			line += formatMuted(" · " + desc)
		}
	}
	fmt.Fprintln(w, line)
}

// printStats prints the collection totals.
func printStats(w io.Writer, s board.Stats) {
	fmt.Fprintf(w, "%s  %s  %s\n",
		formatHeader(fmt.Sprintf("%d total", s.Total)),
		formatDone(fmt.Sprintf("%d completed", s.Completed)),
		formatActive(fmt.Sprintf("%d active", s.Active)),
	)
}

// printNotices writes the queued notifications, one per line.
func printNotices(w io.Writer, q *notify.Queue) {
	for _, t := range q.TakeNew() {
		if t.Message == "" {
			continue
		}
		if t.Kind == notify.KindError {
			fmt.Fprintln(w, formatError(t.Message))
			continue
		}
		fmt.Fprintln(w, formatSuccess(t.Message))
	}
}
