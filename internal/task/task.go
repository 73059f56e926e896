// Package task defines the core domain types for taskboard.
package task

import (
	"errors"
	"strings"
)

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrInvalidID  = errors.New("task id must be positive")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Task is one record of the remote collection.
// A zero ID means the task has never been persisted.
type Task struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Persisted reports whether the task has a server-assigned ID.
func (t Task) Persisted() bool {
	return t.ID > 0
}

// Draft returns the mutable fields of the task as a draft.
func (t Task) Draft() Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// Matches reports whether term is contained in the title or the
// description, ignoring case. An empty term matches everything.
func (t Task) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), term)
}

// Draft is the payload sent when creating or updating a task.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate checks that the draft can be sent to the remote collection.
// The title must contain something other than whitespace.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Apply returns a copy of t with the draft fields written over it.
func (d Draft) Apply(t Task) Task {
	t.Title = d.Title
	t.Description = d.Description
	t.Completed = d.Completed
	return t
}

// New builds an unsaved task from a title and description.
func New(title, description string) (Task, error) {
	d := Draft{Title: title, Description: description}
	if err := d.Validate(); err != nil {
		return Task{}, err
	}
	return d.Apply(Task{}), nil
}

// Clone returns a copy of the slice so callers cannot alias store state.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
