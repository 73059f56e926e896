package board

import "github.com/javiermolinar/taskboard/internal/task"

// Stats aggregates the whole collection, independent of search and filter.
type Stats struct {
	Total     int
	Completed int
	Active    int
}

// EmptyReason explains an empty projection.
type EmptyReason int

const (
	EmptyNone      EmptyReason = iota
	EmptyNoTasks               // the collection itself is empty
	EmptyNoResults             // the search hides every task
)

// Projection is what the board displays.
type Projection struct {
	Visible []task.Task
	Stats   Stats
	Layout  Layout
	Search  string
	Empty   EmptyReason
}

// IsEmpty reports whether nothing is visible.
func (p Projection) IsEmpty() bool {
	return p.Empty != EmptyNone
}

// CanClearSearch reports whether the empty state should offer clearing
// the search.
func (p Projection) CanClearSearch() bool {
	return p.Empty == EmptyNoResults
}

// IndexOf returns the position of the task in Visible, or -1.
func (p Projection) IndexOf(id int64) int {
	for i, t := range p.Visible {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Project derives the visible tasks and stats. It has no side effects and
// never returns a slice aliasing tasks.
func Project(tasks []task.Task, filter Filter, search string, layout Layout) Projection {
	p := Projection{
		Stats:  ComputeStats(tasks),
		Layout: layout,
		Search: search,
	}

	visible := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesFilter(filter, t) {
			continue
		}
		if !t.Matches(search) {
			continue
		}
		visible = append(visible, t)
	}
	p.Visible = visible

	if len(visible) == 0 {
		p.Empty = EmptyNoTasks
		if search != "" {
			p.Empty = EmptyNoResults
		}
	}
	return p
}

// ComputeStats counts tasks by completion.
func ComputeStats(tasks []task.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

// matchesFilter is the hook for view categories. Every category currently
// keeps every task.
func matchesFilter(f Filter, _ task.Task) bool {
	switch f {
	case FilterAll:
		return true
	default:
		return true
	}
}
