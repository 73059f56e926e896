package task

import "context"

// Gateway is the client-side view of the remote task collection.
// Implementations perform network I/O only and never cache.
type Gateway interface {
	// List returns the full collection in server order.
	List(ctx context.Context) ([]Task, error)

	// Create persists a new task.
	Create(ctx context.Context, d Draft) error

	// Update replaces the task addressed by id.
	Update(ctx context.Context, id int64, d Draft) error

	// Delete removes the task addressed by id.
	Delete(ctx context.Context, id int64) error
}

// Repository defines the storage interface used by the server.
type Repository interface {
	// ListTasks returns every task ordered by ID.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if missing.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// CreateTask inserts a task and sets its ID.
	CreateTask(ctx context.Context, t *Task) error

	// UpdateTask replaces the stored fields of an existing task.
	// Returns ErrTaskNotFound if missing.
	UpdateTask(ctx context.Context, t *Task) error

	// DeleteTask removes a task. Returns ErrTaskNotFound if missing.
	DeleteTask(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
