package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/task"
	"github.com/javiermolinar/taskboard/internal/testutil"
)

var errBoom = errors.New("500 internal server error")

type fakeModal struct {
	closes  int
	onClose func()
}

func (m *fakeModal) Close() {
	m.closes++
	if m.onClose != nil {
		m.onClose()
	}
}

type fixture struct {
	store  *board.Store
	gw     *testutil.FakeGateway
	queue  *notify.Queue
	modal  *fakeModal
	engine *Engine
}

func seed() []task.Task {
	return []task.Task{
		{ID: 1, Title: "Buy milk", Completed: false},
		{ID: 2, Title: "Walk dog", Completed: true},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: board.NewStore(board.WithTasks(seed())),
		gw:    testutil.NewFakeGateway(seed()...),
		queue: notify.NewQueue(),
		modal: &fakeModal{},
	}
	f.engine = New(f.store, f.gw, f.queue, WithModal(f.modal))
	t.Cleanup(f.engine.Close)
	return f
}

func (f *fixture) messages() []string {
	var out []string
	for _, toast := range f.queue.Items() {
		out = append(out, toast.Message)
	}
	return out
}

func completed(t *testing.T, s *board.Store, id int64) bool {
	t.Helper()
	tk, ok := s.Find(id)
	if !ok {
		t.Fatalf("task %d not cached", id)
	}
	return tk.Completed
}

func TestFetch_ReplacesCollection(t *testing.T) {
	f := newFixture(t)
	f.gw.AddTask("Read book", false)

	if err := f.engine.Do(context.Background(), f.engine.Fetch()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if f.store.Len() != 3 {
		t.Errorf("len = %d, want 3", f.store.Len())
	}
	if f.store.Status() != board.StatusReady {
		t.Errorf("status = %v, want ready", f.store.Status())
	}
	if f.queue.Len() != 0 {
		t.Errorf("fetch success must be silent, got %v", f.messages())
	}
}

func TestFetch_FailureOffersRetry(t *testing.T) {
	f := newFixture(t)
	f.gw.ListErr = errBoom

	err := f.engine.Do(context.Background(), f.engine.Fetch())
	if !IsGateway(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if f.store.Status() != board.StatusFailed || f.store.Loading() {
		t.Errorf("status = %v loading = %v, want failed and idle", f.store.Status(), f.store.Loading())
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgLoadFailed {
		t.Errorf("messages = %v", got)
	}

	f.gw.ListErr = nil
	if err := f.engine.Do(context.Background(), f.engine.Fetch()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if f.store.Status() != board.StatusReady {
		t.Errorf("status = %v after retry", f.store.Status())
	}
}

func TestFetch_StaleResponseIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.engine.Fetch()
	newer := f.engine.Fetch()

	oldResult := older.Remote(ctx)
	f.gw.AddTask("Read book", false)
	newResult := newer.Remote(ctx)

	if err := newResult.Settle(); err != nil {
		t.Fatal(err)
	}
	if err := oldResult.Settle(); err != nil {
		t.Fatal(err)
	}
	if f.store.Len() != 3 {
		t.Errorf("len = %d, the older response must not win", f.store.Len())
	}
}

func TestCreate_BlankTitle(t *testing.T) {
	f := newFixture(t)

	call, err := f.engine.Create(task.Draft{Title: "   "})
	if call != nil {
		t.Fatal("no call must be built for a blank title")
	}
	if !IsValidation(err) || !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.gw.TotalCalls() != 0 {
		t.Errorf("network calls = %d, want 0", f.gw.TotalCalls())
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgTitleRequired {
		t.Errorf("messages = %v", got)
	}
	if f.modal.closes != 0 {
		t.Error("modal must stay open")
	}
}

func TestCreate_SuccessOrder(t *testing.T) {
	f := newFixture(t)
	var loadingAtClose bool
	var toastsAtClose int
	f.modal.onClose = func() {
		loadingAtClose = f.store.Loading()
		toastsAtClose = f.queue.Len()
	}

	call, err := f.engine.Create(task.Draft{Title: "Read book"})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.engine.Do(context.Background(), call); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !loadingAtClose || toastsAtClose != 1 {
		t.Errorf("at close: loading=%v toasts=%d, want refetch and toast first", loadingAtClose, toastsAtClose)
	}
	if f.store.Len() != 3 {
		t.Errorf("len = %d, want the refetched collection", f.store.Len())
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgCreated {
		t.Errorf("messages = %v", got)
	}
	if f.gw.Calls("Create") != 1 || f.gw.Calls("List") != 1 {
		t.Errorf("calls: create=%d list=%d", f.gw.Calls("Create"), f.gw.Calls("List"))
	}
	if f.store.Pending() {
		t.Error("store must not stay pending")
	}
}

func TestCreate_PendingUntilSettled(t *testing.T) {
	f := newFixture(t)

	call, _ := f.engine.Create(task.Draft{Title: "Read book"})
	if !f.store.Pending() || f.store.Loading() {
		t.Fatalf("pending = %v loading = %v, want a write in flight only", f.store.Pending(), f.store.Loading())
	}
	r := call.Remote(context.Background())
	if err := r.Settle(); err != nil {
		t.Fatal(err)
	}
	if r.Next() == nil || !f.store.Loading() {
		t.Fatal("expected a refetch reserved on success")
	}
	if err := r.Settle(); err != nil || f.queue.Len() != 1 {
		t.Errorf("second settle must be a no-op, err=%v messages=%v", err, f.messages())
	}
}

func TestCreate_ReloadSettlesFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	call, _ := f.engine.Create(task.Draft{Title: "Read book"})
	reload := f.engine.Fetch()

	reloadResult := reload.Remote(ctx)
	createResult := call.Remote(ctx)

	if err := reloadResult.Settle(); err != nil {
		t.Fatal(err)
	}
	if err := createResult.Settle(); err != nil {
		t.Fatal(err)
	}
	if err := f.engine.Do(ctx, createResult.Next()); err != nil {
		t.Fatal(err)
	}

	if f.store.Len() != 3 {
		t.Errorf("len = %d, want the created task cached", f.store.Len())
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgCreated {
		t.Errorf("messages = %v", got)
	}
	if f.store.Pending() {
		t.Error("store must not stay pending")
	}
}

func TestCreate_ReloadSettlesLast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	call, _ := f.engine.Create(task.Draft{Title: "Read book"})
	reload := f.engine.Fetch()
	reloadResult := reload.Remote(ctx)

	if err := f.engine.Do(ctx, call); err != nil {
		t.Fatal(err)
	}
	if err := reloadResult.Settle(); err != nil {
		t.Fatal(err)
	}

	if f.store.Len() != 3 {
		t.Errorf("len = %d, the earlier reload must not win", f.store.Len())
	}
	if f.store.Status() != board.StatusReady || f.store.Pending() {
		t.Errorf("status = %v pending = %v", f.store.Status(), f.store.Pending())
	}
}

func TestCreate_FailureKeepsModalOpen(t *testing.T) {
	f := newFixture(t)
	f.gw.CreateErr = errBoom

	call, _ := f.engine.Create(task.Draft{Title: "Read book"})
	err := f.engine.Do(context.Background(), call)
	if !IsGateway(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if f.modal.closes != 0 {
		t.Error("modal must stay open on failure")
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgCreateFailed {
		t.Errorf("messages = %v", got)
	}
	if f.store.Len() != 2 || f.store.Pending() {
		t.Errorf("len = %d pending = %v", f.store.Len(), f.store.Pending())
	}
	if f.store.Status() != board.StatusReady {
		t.Errorf("status = %v, want ready", f.store.Status())
	}
}

func TestCreate_FollowUpListFails(t *testing.T) {
	f := newFixture(t)
	f.gw.ListErr = errBoom

	call, _ := f.engine.Create(task.Draft{Title: "Read book"})
	if err := f.engine.Do(context.Background(), call); err != nil {
		t.Fatalf("create itself succeeded, got %v", err)
	}
	got := f.messages()
	if len(got) != 2 || got[0] != MsgCreated || got[1] != MsgLoadFailed {
		t.Errorf("messages = %v", got)
	}
	if f.store.Status() != board.StatusFailed {
		t.Errorf("status = %v, want failed", f.store.Status())
	}
	if f.modal.closes != 1 {
		t.Errorf("closes = %d, want 1", f.modal.closes)
	}
}

func TestUpdate_SuccessAndFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	call, err := f.engine.Update(1, task.Draft{Title: "Buy oat milk"})
	if err != nil {
		t.Fatal(err)
	}
	if tk, _ := f.store.Find(1); tk.Title != "Buy oat milk" {
		t.Errorf("expected optimistic title, got %q", tk.Title)
	}
	if err := f.engine.Do(ctx, call); err != nil {
		t.Fatal(err)
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgUpdated {
		t.Errorf("messages = %v", got)
	}

	f.gw.UpdateErr = errBoom
	call, _ = f.engine.Update(1, task.Draft{Title: "Buy bread"})
	if err := f.engine.Do(ctx, call); !IsGateway(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if tk, _ := f.store.Find(1); tk.Title != "Buy oat milk" {
		t.Errorf("title = %q, want rolled back", tk.Title)
	}
	if f.queue.Count(notify.KindError) != 1 {
		t.Errorf("errors = %d, want 1", f.queue.Count(notify.KindError))
	}
	if f.modal.closes != 1 {
		t.Errorf("closes = %d, want 1 (only the success)", f.modal.closes)
	}
}

func TestDelete_Declined(t *testing.T) {
	f := newFixture(t)
	var asked task.Task

	call, err := f.engine.Delete(2, ConfirmFunc(func(tk task.Task) bool {
		asked = tk
		return false
	}))
	if call != nil || !errors.Is(err, ErrConfirmationDeclined) {
		t.Fatalf("call = %v err = %v", call, err)
	}
	if asked.Title != "Walk dog" {
		t.Errorf("confirmer got %+v", asked)
	}
	if f.gw.TotalCalls() != 0 || f.queue.Len() != 0 || f.store.Len() != 2 {
		t.Error("declining must have no effect")
	}
}

func TestDelete_FailureLeavesTasks(t *testing.T) {
	f := newFixture(t)
	f.gw.DeleteErr = errBoom
	before := f.store.Tasks()

	call, err := f.engine.Delete(1, Answer(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.engine.Do(context.Background(), call); !IsGateway(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	after := f.store.Tasks()
	if len(after) != len(before) || after[0] != before[0] || after[1] != before[1] {
		t.Errorf("tasks changed: %+v", after)
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgDeleteFailed {
		t.Errorf("messages = %v", got)
	}
}

func TestDelete_Success(t *testing.T) {
	f := newFixture(t)

	call, _ := f.engine.Delete(1, Answer(true))
	if err := f.engine.Do(context.Background(), call); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.store.Find(1); ok {
		t.Error("task 1 must be gone")
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgDeleted {
		t.Errorf("messages = %v", got)
	}
}

func TestToggle_RollbackOnFailure(t *testing.T) {
	f := newFixture(t)
	f.gw.UpdateErr = errBoom

	call := f.engine.Toggle(1)
	if !completed(t, f.store, 1) {
		t.Fatal("expected optimistic flip before the call")
	}
	if err := f.engine.Do(context.Background(), call); !IsGateway(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if completed(t, f.store, 1) {
		t.Error("expected completed=false after rollback")
	}
	if got := f.messages(); len(got) != 1 || got[0] != MsgToggleFailed {
		t.Errorf("messages = %v, want exactly one error", got)
	}
}

func TestToggle_SuccessIsSilent(t *testing.T) {
	f := newFixture(t)

	if err := f.engine.Do(context.Background(), f.engine.Toggle(2)); err != nil {
		t.Fatal(err)
	}
	if completed(t, f.store, 2) {
		t.Error("expected completed=false")
	}
	if f.queue.Len() != 0 {
		t.Errorf("messages = %v, want none", f.messages())
	}
	if f.gw.Calls("List") != 0 {
		t.Error("toggle must not refetch")
	}
	if gwTasks := f.gw.Tasks(); gwTasks[1].Completed {
		t.Error("remote record must be flipped")
	}
}

func TestToggle_ConfirmedAfterReload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	call := f.engine.Toggle(1)
	reload := f.engine.Fetch()
	reloadResult := reload.Remote(ctx)
	if err := reloadResult.Settle(); err != nil {
		t.Fatal(err)
	}
	if completed(t, f.store, 1) {
		t.Fatal("reload answered before the update should carry the old value")
	}

	r := call.Remote(ctx)
	if err := r.Settle(); err != nil {
		t.Fatal(err)
	}
	if !completed(t, f.store, 1) {
		t.Error("confirmed toggle must be shown again")
	}
	if r.Next() == nil {
		t.Fatal("expected a refetch after the reload replaced the toggle")
	}
	if err := f.engine.Do(ctx, r.Next()); err != nil {
		t.Fatal(err)
	}
	if !completed(t, f.store, 1) {
		t.Error("refetch must agree with the server")
	}
	if f.queue.Len() != 0 {
		t.Errorf("messages = %v, want none", f.messages())
	}
}

func TestToggle_AndEditSameTaskBothFail(t *testing.T) {
	for _, tc := range []struct {
		name      string
		editFirst bool
	}{
		{name: "toggle settles first"},
		{name: "edit settles first", editFirst: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.gw.UpdateErr = errBoom

			toggle := f.engine.Toggle(1)
			edit, err := f.engine.Update(1, task.Draft{Title: "Buy oat milk", Completed: true})
			if err != nil {
				t.Fatal(err)
			}

			toggleResult := toggle.Remote(ctx)
			editResult := edit.Remote(ctx)
			if tc.editFirst {
				_ = editResult.Settle()
				_ = toggleResult.Settle()
			} else {
				_ = toggleResult.Settle()
				_ = editResult.Settle()
			}

			tk, _ := f.store.Find(1)
			if tk.Title != "Buy milk" || tk.Completed {
				t.Errorf("task = %+v, want the server's {Buy milk false}", tk)
			}
			if f.queue.Count(notify.KindError) != 2 {
				t.Errorf("errors = %d, want 2", f.queue.Count(notify.KindError))
			}
		})
	}
}

func TestToggle_FailureKeepsLaterEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toggle := f.engine.Toggle(1)
	edit, _ := f.engine.Update(1, task.Draft{Title: "Buy oat milk", Completed: true})
	editResult := edit.Remote(ctx)

	f.gw.UpdateErr = errBoom
	_ = toggle.Remote(ctx).Settle()
	if err := editResult.Settle(); err != nil {
		t.Fatal(err)
	}

	tk, _ := f.store.Find(1)
	if tk.Title != "Buy oat milk" {
		t.Errorf("title = %q, the edit must survive the toggle rollback", tk.Title)
	}
}

func TestToggle_UnknownTask(t *testing.T) {
	f := newFixture(t)
	if call := f.engine.Toggle(42); call != nil {
		t.Fatal("expected nil call for an unknown task")
	}
	if err := f.engine.Do(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if f.gw.TotalCalls() != 0 || f.queue.Len() != 0 {
		t.Error("unknown toggle must be silent")
	}
}

func TestToggle_IndependentRollbacks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.engine.Toggle(1)
	second := f.engine.Toggle(2)

	firstResult := first.Remote(ctx)
	f.gw.UpdateErr = errBoom
	secondResult := second.Remote(ctx)

	_ = secondResult.Settle()
	_ = firstResult.Settle()

	if !completed(t, f.store, 1) {
		t.Error("task 1 must keep its confirmed flip")
	}
	if !completed(t, f.store, 2) {
		t.Error("task 2 must be rolled back to completed=true")
	}
	if f.queue.Count(notify.KindError) != 1 {
		t.Errorf("errors = %d, want 1", f.queue.Count(notify.KindError))
	}
}

func TestClose_SettleLeavesStoreAlone(t *testing.T) {
	f := newFixture(t)
	call := f.engine.Fetch()
	f.engine.Close()

	err := call.Remote(context.Background()).Settle()
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if f.queue.Len() != 0 {
		t.Errorf("messages = %v", f.messages())
	}
	if f.store.Len() != 2 {
		t.Errorf("len = %d", f.store.Len())
	}
}
