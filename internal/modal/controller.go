// Package modal owns the lifecycle of the task dialog: which task it
// edits, where focus goes while it is open, and where focus returns to.
package modal

import (
	"errors"
	"strings"

	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
)

// ErrNotOpen is returned by Save when no dialog is open.
var ErrNotOpen = errors.New("dialog is not open")

// Mode tells whether the dialog creates or edits.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Region is a focusable area of the screen.
type Region int

const (
	RegionNone Region = iota
	RegionBoard
	RegionSidebar
	RegionSearch
	RegionFormTitle
	RegionFormDescription
	RegionFormCompleted
)

// Target identifies one focusable element. For board cards ID is the task
// ID, for sidebar entries it is the entry index.
type Target struct {
	Region Region
	ID     int64
}

// Fields are the raw values of the dialog inputs.
type Fields struct {
	Title       string
	Description string
	Completed   bool
}

// Draft converts the raw values into a draft.
func (f Fields) Draft() task.Draft {
	return task.Draft{
		Title:       f.Title,
		Description: f.Description,
		Completed:   f.Completed,
	}
}

// FieldsOf returns the values that pre-fill the dialog for t.
func FieldsOf(t task.Task) Fields {
	return Fields{Title: t.Title, Description: t.Description, Completed: t.Completed}
}

// Form is the dialog's input surface.
type Form interface {
	Fields() Fields
	SetFields(Fields)
	SetTitleInvalid(bool)
}

// Focuser moves focus around the screen.
type Focuser interface {
	Current() Target
	Focus(Target)
	// Attached reports whether t still exists on screen.
	Attached(Target) bool
}

// Notifier receives user-visible messages.
type Notifier interface {
	Push(message string, kind notify.Kind) notify.Toast
}

// Session is the state of an open dialog.
type Session struct {
	Mode        Mode
	EditingID   int64
	ReturnFocus Target
	// EntryPending is true until the entry transition finishes and the
	// title field has received focus.
	EntryPending bool
}

// Submission is what Save hands to the reconciliation engine.
type Submission struct {
	Mode  Mode
	ID    int64
	Draft task.Draft
}

// Controller allows at most one open dialog.
type Controller struct {
	form    Form
	focus   Focuser
	notify  Notifier
	session *Session
}

// New creates a controller over the given ports.
func New(form Form, focus Focuser, n Notifier) *Controller {
	return &Controller{form: form, focus: focus, notify: n}
}

// IsOpen reports whether a dialog is open.
func (c *Controller) IsOpen() bool {
	return c.session != nil
}

// Session returns the open session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// OpenCreate opens an empty dialog.
func (c *Controller) OpenCreate() {
	c.open(ModeCreate, 0, Fields{})
}

// OpenEdit opens the dialog pre-filled with t.
func (c *Controller) OpenEdit(t task.Task) {
	c.open(ModeEdit, t.ID, FieldsOf(t))
}

func (c *Controller) open(mode Mode, id int64, fields Fields) {
	if c.session != nil {
		c.Close()
	}
	c.session = &Session{
		Mode:         mode,
		EditingID:    id,
		ReturnFocus:  c.focus.Current(),
		EntryPending: true,
	}
	c.form.SetFields(fields)
	c.form.SetTitleInvalid(false)
}

// EnterComplete moves focus to the title field once the dialog has
// finished appearing. It reports whether focus was moved.
func (c *Controller) EnterComplete() bool {
	if c.session == nil || !c.session.EntryPending {
		return false
	}
	c.session.EntryPending = false
	c.focus.Focus(Target{Region: RegionFormTitle})
	return true
}

// Close closes the dialog and gives focus back to where it was when the
// dialog opened, if that element is still on screen. Closing a closed
// dialog does nothing.
func (c *Controller) Close() {
	if c.session == nil {
		return
	}
	ret := c.session.ReturnFocus
	c.session = nil
	c.form.SetTitleInvalid(false)
	if ret.Region != RegionNone && c.focus.Attached(ret) {
		c.focus.Focus(ret)
	}
}

// Save validates the dialog. A blank title marks the field invalid,
// notifies, keeps focus on the title and returns a ValidationError. The
// dialog stays open either way; the engine closes it on success.
func (c *Controller) Save() (Submission, error) {
	if c.session == nil {
		return Submission{}, ErrNotOpen
	}
	fields := c.form.Fields()
	if strings.TrimSpace(fields.Title) == "" {
		c.form.SetTitleInvalid(true)
		c.notify.Push(reconcile.MsgTitleRequired, notify.KindError)
		c.focus.Focus(Target{Region: RegionFormTitle})
		return Submission{}, &reconcile.ValidationError{Field: "title", Err: task.ErrEmptyTitle}
	}
	c.form.SetTitleInvalid(false)
	return Submission{
		Mode:  c.session.Mode,
		ID:    c.session.EditingID,
		Draft: fields.Draft(),
	}, nil
}
