package modal

import (
	"errors"
	"testing"

	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
)

type fakeForm struct {
	fields  Fields
	invalid bool
}

func (f *fakeForm) Fields() Fields { return f.fields }
func (f *fakeForm) SetFields(v Fields) { f.fields = v }
func (f *fakeForm) SetTitleInvalid(v bool) { f.invalid = v }

type fakeFocus struct {
	current  Target
	attached map[Target]bool
	moves    []Target
}

func (f *fakeFocus) Current() Target { return f.current }

func (f *fakeFocus) Focus(t Target) {
	f.current = t
	f.moves = append(f.moves, t)
}

func (f *fakeFocus) Attached(t Target) bool { return f.attached[t] }

func newController() (*Controller, *fakeForm, *fakeFocus, *notify.Queue) {
	form := &fakeForm{}
	card := Target{Region: RegionBoard, ID: 7}
	focus := &fakeFocus{current: card, attached: map[Target]bool{card: true}}
	q := notify.NewQueue()
	return New(form, focus, q), form, focus, q
}

func TestOpenCreate_ResetsForm(t *testing.T) {
	c, form, _, _ := newController()
	form.fields = Fields{Title: "leftover"}
	form.invalid = true

	c.OpenCreate()

	s, ok := c.Session()
	if !ok || s.Mode != ModeCreate || !s.EntryPending {
		t.Fatalf("session = %+v, %v", s, ok)
	}
	if form.fields != (Fields{}) || form.invalid {
		t.Errorf("form not reset: %+v invalid=%v", form.fields, form.invalid)
	}
}

func TestEnterComplete_FocusesTitleOnce(t *testing.T) {
	c, _, focus, _ := newController()
	c.OpenCreate()

	if !c.EnterComplete() {
		t.Fatal("expected focus transfer")
	}
	if focus.current.Region != RegionFormTitle {
		t.Errorf("focus = %+v, want title", focus.current)
	}
	if c.EnterComplete() {
		t.Error("second EnterComplete must be a no-op")
	}
}

func TestClose_Idempotent(t *testing.T) {
	c, _, focus, _ := newController()
	c.OpenCreate()
	c.EnterComplete()

	c.Close()
	moves := len(focus.moves)
	c.Close()

	if c.IsOpen() {
		t.Fatal("expected closed")
	}
	if len(focus.moves) != moves {
		t.Error("second close must not move focus")
	}
}

func TestClose_RestoresFocusWhenAttached(t *testing.T) {
	c, _, focus, _ := newController()
	origin := focus.current
	c.OpenCreate()
	c.EnterComplete()

	c.Close()
	if focus.current != origin {
		t.Errorf("focus = %+v, want %+v", focus.current, origin)
	}
}

func TestClose_SkipsDetachedOrigin(t *testing.T) {
	c, _, focus, _ := newController()
	c.OpenCreate()
	c.EnterComplete()
	focus.attached = map[Target]bool{}

	c.Close()
	if focus.current.Region != RegionFormTitle {
		t.Errorf("focus moved to a detached element: %+v", focus.current)
	}
}

func TestOpenEdit_RoundTrip(t *testing.T) {
	c, _, _, _ := newController()
	tk := task.Task{ID: 3, Title: "Walk dog", Description: "twice", Completed: true}

	c.OpenEdit(tk)
	sub, err := c.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if sub.Mode != ModeEdit || sub.ID != 3 {
		t.Errorf("submission = %+v", sub)
	}
	if sub.Draft != tk.Draft() {
		t.Errorf("draft = %+v, want %+v", sub.Draft, tk.Draft())
	}
	if !c.IsOpen() {
		t.Error("Save must not close the dialog")
	}
}

func TestSave_BlankTitle(t *testing.T) {
	c, form, focus, q := newController()
	c.OpenCreate()
	form.fields = Fields{Title: "  \t"}

	_, err := c.Save()
	if !reconcile.IsValidation(err) || !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !form.invalid {
		t.Error("title must be marked invalid")
	}
	if focus.current.Region != RegionFormTitle {
		t.Errorf("focus = %+v, want title", focus.current)
	}
	if items := q.Items(); len(items) != 1 || items[0].Message != "Title is required" {
		t.Errorf("toasts = %+v", items)
	}
	if !c.IsOpen() {
		t.Error("dialog must stay open")
	}
}

func TestSave_KeepsUntrimmedTitle(t *testing.T) {
	c, form, _, _ := newController()
	c.OpenCreate()
	form.fields = Fields{Title: "  padded "}

	sub, err := c.Save()
	if err != nil {
		t.Fatal(err)
	}
	if sub.Draft.Title != "  padded " {
		t.Errorf("title = %q", sub.Draft.Title)
	}
}

func TestOpen_ClosesPreviousFirst(t *testing.T) {
	c, _, focus, _ := newController()
	origin := focus.current
	c.OpenCreate()
	c.EnterComplete()

	c.OpenEdit(task.Task{ID: 9, Title: "x"})

	s, _ := c.Session()
	if s.Mode != ModeEdit || s.EditingID != 9 {
		t.Fatalf("session = %+v", s)
	}
	if s.ReturnFocus != origin {
		t.Errorf("return focus = %+v, want the original %+v", s.ReturnFocus, origin)
	}
}

func TestSave_NotOpen(t *testing.T) {
	c, _, _, _ := newController()
	if _, err := c.Save(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}
