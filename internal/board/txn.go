package board

import "github.com/javiermolinar/taskboard/internal/task"

// Txn is an optimistic change to one cached task. It keeps the pre-change
// snapshot until the remote call settles.
type Txn struct {
	store      *Store
	id         int64
	before     task.Task
	after      task.Task
	generation uint64
	done       bool

	// removed transactions restore by reinserting at index.
	removed bool
	index   int
}

// Mutate applies fn to the cached task with the given ID and returns the
// transaction holding its previous value together with the new value.
// ok is false when no such task is cached.
func (s *Store) Mutate(id int64, fn func(*task.Task)) (txn *Txn, after task.Task, ok bool) {
	i := s.index(id)
	if i < 0 {
		return nil, task.Task{}, false
	}
	txn = &Txn{
		store:      s,
		id:         id,
		before:     s.tasks[i],
		generation: s.generation,
	}
	fn(&s.tasks[i])
	s.tasks[i].ID = id
	txn.after = s.tasks[i]
	s.touch()
	return txn, s.tasks[i], true
}

// Remove drops the cached task with the given ID and returns the
// transaction that can put it back.
func (s *Store) Remove(id int64) (txn *Txn, before task.Task, ok bool) {
	i := s.index(id)
	if i < 0 {
		return nil, task.Task{}, false
	}
	txn = &Txn{
		store:      s,
		id:         id,
		before:     s.tasks[i],
		generation: s.generation,
		removed:    true,
		index:      i,
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.touch()
	return txn, txn.before, true
}

// Before returns the snapshot taken when the transaction started.
func (t *Txn) Before() task.Task {
	return t.before
}

// Commit discards the snapshot. It reports false when the collection was
// replaced while the change was in flight, so the cache may no longer
// hold it.
func (t *Txn) Commit() bool {
	t.done = true
	return t.store.generation == t.generation
}

// Rollback undoes the change and reports whether anything was written.
// Nothing is restored when the collection has been replaced since the
// transaction started; the replacement is newer than the snapshot. A
// mutated task that is gone stays gone, and a removed task is reinserted
// at its old position. Other tasks are never touched.
//
// A mutation is undone field by field: a field goes back to its snapshot
// value only while it still holds the value this transaction wrote, so a
// later change to the same task survives.
func (t *Txn) Rollback() bool {
	if t.done {
		return false
	}
	t.done = true
	s := t.store
	if s.generation != t.generation {
		return false
	}
	i := s.index(t.id)
	if t.removed {
		if i >= 0 {
			return false
		}
		at := min(t.index, len(s.tasks))
		s.tasks = append(s.tasks, task.Task{})
		copy(s.tasks[at+1:], s.tasks[at:])
		s.tasks[at] = t.before
		s.touch()
		return true
	}
	if i < 0 {
		return false
	}
	if !restoreFields(&s.tasks[i], t.before, t.after) {
		return false
	}
	s.touch()
	return true
}

func restoreFields(cur *task.Task, before, after task.Task) bool {
	changed := false
	if cur.Title == after.Title && cur.Title != before.Title {
		cur.Title = before.Title
		changed = true
	}
	if cur.Description == after.Description && cur.Description != before.Description {
		cur.Description = before.Description
		changed = true
	}
	if cur.Completed == after.Completed && cur.Completed != before.Completed {
		cur.Completed = before.Completed
		changed = true
	}
	return changed
}
