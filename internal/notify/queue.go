// Package notify provides transient, auto-expiring user notifications.
package notify

import "time"

// Lifetime is how long a toast stays visible.
const Lifetime = 3000 * time.Millisecond

// Kind classifies a toast.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Toast is one notification.
type Toast struct {
	ID        uint64
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// ExpiresAt returns when the toast should disappear.
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(Lifetime)
}

// Queue keeps toasts in arrival order. There is no cap and no dedup.
// It is not safe for concurrent use.
type Queue struct {
	now    func() time.Time
	nextID uint64
	items  []Toast
	fresh  []Toast
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithClock overrides the time source.
func WithClock(now func() time.Time) QueueOption {
	return func(q *Queue) { q.now = now }
}

// NewQueue creates an empty queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{now: time.Now}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a toast and returns it.
func (q *Queue) Push(message string, kind Kind) Toast {
	q.nextID++
	t := Toast{
		ID:        q.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: q.now(),
	}
	q.items = append(q.items, t)
	q.fresh = append(q.fresh, t)
	return t
}

// TakeNew returns the toasts pushed since the previous call so the caller
// can schedule one timer per toast.
func (q *Queue) TakeNew() []Toast {
	fresh := q.fresh
	q.fresh = nil
	return fresh
}

// Dismiss removes the toast with the given ID.
func (q *Queue) Dismiss(id uint64) bool {
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Expire removes every toast whose lifetime has elapsed at now and
// returns how many were removed.
func (q *Queue) Expire(now time.Time) int {
	kept := q.items[:0]
	removed := 0
	for _, t := range q.items {
		if !now.Before(t.ExpiresAt()) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	q.items = kept
	return removed
}

// Items returns the visible toasts, oldest first.
func (q *Queue) Items() []Toast {
	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of visible toasts.
func (q *Queue) Len() int {
	return len(q.items)
}

// Count returns the number of visible toasts of the given kind.
func (q *Queue) Count(kind Kind) int {
	n := 0
	for _, t := range q.items {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
