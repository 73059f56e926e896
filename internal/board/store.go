// Package board holds the client-side task cache and the pure projection
// that turns it into what the board displays.
package board

import (
	"github.com/javiermolinar/taskboard/internal/task"
)

// Layout selects how the board arranges tasks.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

// ParseLayout returns the layout for s, defaulting to grid.
func ParseLayout(s string) Layout {
	if Layout(s) == LayoutList {
		return LayoutList
	}
	return LayoutGrid
}

// Filter is the view category. Only "all" restricts nothing; unknown
// values pass through untouched.
type Filter string

const FilterAll Filter = "all"

// LoadStatus describes the state of the most relevant fetch.
type LoadStatus int

const (
	StatusIdle LoadStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store is the single source of truth for one client's task collection
// and view parameters. It is not safe for concurrent use; all calls must
// happen on the event loop that owns it.
type Store struct {
	tasks  []task.Task
	filter Filter
	layout Layout
	search string

	// Fetch sequencing: issued is the last reserved sequence, applied the
	// last one whose outcome was written, settled the highest finished.
	issued  uint64
	applied uint64
	settled uint64
	status  LoadStatus

	// writes counts creates, updates, deletes and toggles in flight.
	writes int

	// generation changes on every wholesale replacement of tasks.
	generation uint64
	version    uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLayout sets the initial layout.
func WithLayout(l Layout) StoreOption {
	return func(s *Store) { s.layout = l }
}

// WithTasks seeds the store, as if a fetch had completed.
func WithTasks(tasks []task.Task) StoreOption {
	return func(s *Store) {
		s.tasks = task.Clone(tasks)
		s.status = StatusReady
		s.generation++
	}
}

// NewStore creates an empty store showing every task in a grid.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		filter: FilterAll,
		layout: LayoutGrid,
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns a copy of the cached collection in server order.
func (s *Store) Tasks() []task.Task {
	return task.Clone(s.tasks)
}

// Len returns the number of cached tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find returns the cached task with the given ID.
func (s *Store) Find(id int64) (task.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) index(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Filter returns the active view category.
func (s *Store) Filter() Filter { return s.filter }

// SetFilter changes the view category.
func (s *Store) SetFilter(f Filter) {
	s.filter = f
	s.touch()
}

// Layout returns the active layout.
func (s *Store) Layout() Layout { return s.layout }

// SetLayout switches between grid and list.
func (s *Store) SetLayout(l Layout) {
	s.layout = l
	s.touch()
}

// Search returns the current search term.
func (s *Store) Search() string { return s.search }

// SetSearch replaces the search term.
func (s *Store) SetSearch(term string) {
	s.search = term
	s.touch()
}

// ClearSearch empties the search term.
func (s *Store) ClearSearch() {
	s.SetSearch("")
}

// Status returns the load status.
func (s *Store) Status() LoadStatus { return s.status }

// Loading reports whether a fetch newer than every settled one is pending.
func (s *Store) Loading() bool { return s.issued > s.settled }

// Version changes on every observable mutation. Renderers may use it to
// skip work when nothing changed.
func (s *Store) Version() uint64 { return s.version }

// Generation changes on every wholesale replacement of the collection.
func (s *Store) Generation() uint64 { return s.generation }

// BeginFetch reserves the next fetch sequence number.
func (s *Store) BeginFetch() uint64 {
	s.issued++
	s.status = StatusLoading
	s.touch()
	return s.issued
}

// ApplyFetch replaces the collection with the result of fetch seq.
// It returns false, leaving the store untouched, when a newer fetch has
// already been applied.
func (s *Store) ApplyFetch(seq uint64, tasks []task.Task) bool {
	s.settle(seq)
	if seq < s.applied {
		return false
	}
	s.applied = seq
	s.tasks = task.Clone(tasks)
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}
	s.generation++
	s.status = StatusReady
	if s.Loading() {
		s.status = StatusLoading
	}
	s.touch()
	return true
}

// FailFetch records that fetch seq failed. It returns false when a newer
// fetch has already been applied, in which case the failure is stale.
func (s *Store) FailFetch(seq uint64) bool {
	s.settle(seq)
	if seq < s.applied {
		return false
	}
	s.applied = seq
	s.status = StatusFailed
	s.touch()
	return true
}

// BeginWrite records a create, update, delete or toggle in flight.
func (s *Store) BeginWrite() {
	s.writes++
	s.touch()
}

// EndWrite records that a write has settled.
func (s *Store) EndWrite() {
	if s.writes > 0 {
		s.writes--
		s.touch()
	}
}

// Pending reports whether any fetch or write is in flight.
func (s *Store) Pending() bool {
	return s.Loading() || s.writes > 0
}

func (s *Store) settle(seq uint64) {
	if seq > s.settled {
		s.settled = seq
	}
}

// Project derives the current view.
func (s *Store) Project() Projection {
	return Project(s.tasks, s.filter, s.search, s.layout)
}

func (s *Store) touch() {
	s.version++
}
