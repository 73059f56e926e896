// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/javiermolinar/taskboard/internal/task"
)

// FakeGateway is an in-memory implementation of task.Gateway for testing.
type FakeGateway struct {
	mu     sync.Mutex
	tasks  []task.Task
	nextID int64
	calls  map[string]int

	// Error injection for testing
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

var _ task.Gateway = (*FakeGateway)(nil)

// NewFakeGateway creates a FakeGateway holding tasks. IDs are assigned to
// any task without one.
func NewFakeGateway(tasks ...task.Task) *FakeGateway {
	f := &FakeGateway{calls: make(map[string]int)}
	for _, t := range tasks {
		f.add(t)
	}
	return f
}

// AddTask stores t and returns it with its ID.
func (f *FakeGateway) AddTask(title string, completed bool) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(task.Task{Title: title, Completed: completed})
}

func (f *FakeGateway) add(t task.Task) task.Task {
	if t.ID == 0 {
		f.nextID++
		t.ID = f.nextID
	} else if t.ID > f.nextID {
		f.nextID = t.ID
	}
	f.tasks = append(f.tasks, t)
	return t
}

// Tasks returns a copy of the stored collection.
func (f *FakeGateway) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return task.Clone(f.tasks)
}

// Calls returns how many times method was invoked ("List", "Create",
// "Update", "Delete").
func (f *FakeGateway) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (f *FakeGateway) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// List implements task.Gateway.
func (f *FakeGateway) List(ctx context.Context) ([]task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["List"]++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := task.Clone(f.tasks)
	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

// Create implements task.Gateway.
func (f *FakeGateway) Create(ctx context.Context, d task.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Create"]++
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.add(d.Apply(task.Task{}))
	return nil
}

// Update implements task.Gateway.
func (f *FakeGateway) Update(ctx context.Context, id int64, d task.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Update"]++
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i] = d.Apply(f.tasks[i])
			return nil
		}
	}
	return fmt.Errorf("update %d: %w", id, task.ErrTaskNotFound)
}

// Delete implements task.Gateway.
func (f *FakeGateway) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Delete"]++
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %d: %w", id, task.ErrTaskNotFound)
}
