// Package reconcile keeps a board.Store in step with the remote task
// collection.
//
// Every operation is split in three parts so the store is only ever
// touched from the goroutine that owns it:
//
//   - building the *Call (Fetch, Create, ...) runs the local side right
//     away: validation, confirmation, optimistic changes, sequencing;
//   - Call.Remote does network I/O only and may run anywhere;
//   - Result.Settle applies the outcome back on the owning goroutine:
//     store first, then notifications, then closing the modal.
//
// A write that succeeds reserves a refetch when it settles, so the
// collection read back is always newer than any reload issued before
// the write landed. Result.Next returns that refetch; it still has to be
// run like any other call.
package reconcile

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/task"
)

// User-visible notification messages.
const (
	MsgLoadFailed    = "Error loading tasks"
	MsgCreated       = "Task created"
	MsgCreateFailed  = "Error creating task"
	MsgUpdated       = "Task updated"
	MsgUpdateFailed  = "Error updating task"
	MsgDeleted       = "Task deleted"
	MsgDeleteFailed  = "Error deleting task"
	MsgToggleFailed  = "Error updating status"
	MsgTitleRequired = "Title is required"
)

// Op names a reconciliation operation.
type Op int

const (
	OpFetch Op = iota
	OpCreate
	OpUpdate
	OpDelete
	OpToggle
)

func (o Op) String() string {
	switch o {
	case OpFetch:
		return "fetch"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Notifier receives user-visible messages. *notify.Queue implements it.
type Notifier interface {
	Push(message string, kind notify.Kind) notify.Toast
}

// Closer closes the open dialog, if any.
type Closer interface {
	Close()
}

// Confirmer answers a blocking yes/no question about deleting t.
type Confirmer interface {
	Confirm(t task.Task) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(t task.Task) bool

func (f ConfirmFunc) Confirm(t task.Task) bool { return f(t) }

// Answer returns a Confirmer that always answers with yes.
func Answer(yes bool) Confirmer {
	return ConfirmFunc(func(task.Task) bool { return yes })
}

// Engine performs create, update, delete, toggle and fetch against a
// Gateway on behalf of one Store.
type Engine struct {
	store  *board.Store
	gw     task.Gateway
	notify Notifier
	modal  Closer
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithModal sets the dialog closed after a successful create or update.
func WithModal(c Closer) Option {
	return func(e *Engine) { e.modal = c }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithContext sets the parent of every remote call's context.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// New creates an engine.
func New(store *board.Store, gw task.Gateway, n Notifier, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		gw:     gw,
		notify: n,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.ctx, e.cancel = context.WithCancel(e.ctx)
	return e
}

// Store returns the store the engine writes to.
func (e *Engine) Store() *board.Store {
	return e.store
}

// Close cancels in-flight remote calls. Later settles leave the store
// alone.
func (e *Engine) Close() {
	e.cancel()
}

func (e *Engine) closed() bool {
	return e.ctx.Err() != nil
}

// Do runs call to completion on the calling goroutine, followed by the
// refetch it reserves. A nil call is a no-op. Only the error of call
// itself is returned; a failed refetch is notified.
func (e *Engine) Do(ctx context.Context, call *Call) error {
	if call == nil {
		return nil
	}
	r := call.Remote(ctx)
	err := r.Settle()
	for next := r.Next(); next != nil; next = r.Next() {
		r = next.Remote(ctx)
		_ = r.Settle()
	}
	return err
}

// Fetch reserves the next fetch sequence and returns the call that loads
// the whole collection.
func (e *Engine) Fetch() *Call {
	return &Call{engine: e, op: OpFetch, seq: e.store.BeginFetch()}
}

// Create validates d and returns the call that persists it. A blank title
// is notified once and returned as a ValidationError.
func (e *Engine) Create(d task.Draft) (*Call, error) {
	if err := validate(d); err != nil {
		e.notify.Push(MsgTitleRequired, notify.KindError)
		return nil, err
	}
	e.store.BeginWrite()
	return &Call{engine: e, op: OpCreate, draft: d}, nil
}

// Update validates d and returns the call that replaces task id. The
// cached task shows the new values until the call settles.
func (e *Engine) Update(id int64, d task.Draft) (*Call, error) {
	if err := validate(d); err != nil {
		e.notify.Push(MsgTitleRequired, notify.KindError)
		return nil, err
	}
	c := &Call{engine: e, op: OpUpdate, id: id, draft: d}
	if txn, _, ok := e.store.Mutate(id, func(t *task.Task) { *t = d.Apply(*t) }); ok {
		c.txn = txn
	}
	e.store.BeginWrite()
	return c, nil
}

// Delete asks confirm before building the call that removes task id.
// Declining returns ErrConfirmationDeclined and nothing else happens.
func (e *Engine) Delete(id int64, confirm Confirmer) (*Call, error) {
	t, ok := e.store.Find(id)
	if !ok {
		t = task.Task{ID: id}
	}
	if confirm != nil && !confirm.Confirm(t) {
		return nil, ErrConfirmationDeclined
	}
	c := &Call{engine: e, op: OpDelete, id: id}
	if txn, _, ok := e.store.Remove(id); ok {
		c.txn = txn
	}
	e.store.BeginWrite()
	return c, nil
}

// Toggle flips the completed flag of task id in the store and returns the
// call that confirms it remotely. Unknown tasks yield a nil call.
func (e *Engine) Toggle(id int64) *Call {
	txn, after, ok := e.store.Mutate(id, func(t *task.Task) { t.Completed = !t.Completed })
	if !ok {
		return nil
	}
	e.store.BeginWrite()
	return &Call{engine: e, op: OpToggle, id: id, draft: after.Draft(), txn: txn}
}

// Call is one pending operation whose local side has already run.
type Call struct {
	engine *Engine
	op     Op
	id     int64
	draft  task.Draft
	seq    uint64
	txn    *board.Txn

	settled bool
	next    *Call
}

// Op returns the operation kind.
func (c *Call) Op() Op {
	return c.op
}

// ID returns the addressed task, zero for fetch and create.
func (c *Call) ID() int64 {
	return c.id
}

// Remote performs the network part. It never touches the store.
func (c *Call) Remote(ctx context.Context) Result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.engine.ctx, cancel)
	defer stop()

	gw := c.engine.gw
	r := Result{call: c}
	switch c.op {
	case OpFetch:
		r.Tasks, r.Err = gw.List(ctx)
	case OpCreate:
		r.Err = gw.Create(ctx, c.draft)
	case OpUpdate, OpToggle:
		r.Err = gw.Update(ctx, c.id, c.draft)
	case OpDelete:
		r.Err = gw.Delete(ctx, c.id)
	}
	return r
}

// Result is the outcome of Call.Remote, waiting to be settled.
type Result struct {
	call *Call

	// Err is the failure of the operation itself.
	Err error
	// Tasks is the collection returned by a fetch.
	Tasks []task.Task
}

// Op returns the operation kind.
func (r Result) Op() Op {
	return r.call.op
}

// Next returns the refetch reserved when the result settled, or nil.
func (r Result) Next() *Call {
	return r.call.next
}

// Settle applies the result to the store and emits notifications. It
// returns the operation error, if any; it is already notified. Settling
// a result twice is a no-op.
func (r Result) Settle() error {
	c := r.call
	e := c.engine
	if c.settled {
		return nil
	}
	c.settled = true
	if e.closed() {
		return ErrClosed
	}
	if c.op != OpFetch {
		e.store.EndWrite()
	}

	if r.Err != nil {
		return e.settleFailure(c, r.Err)
	}

	switch c.op {
	case OpFetch:
		e.applyList(c.seq, r.Tasks)
	case OpToggle:
		if !c.txn.Commit() {
			e.reapplyToggle(c)
		}
	default:
		if c.txn != nil {
			c.txn.Commit()
		}
		c.next = e.Fetch()
		e.notify.Push(successMessage(c.op), notify.KindSuccess)
		if c.op != OpDelete && e.modal != nil {
			e.modal.Close()
		}
	}
	e.logger.Debug("settled", "op", c.op, "id", c.id, "seq", c.seq)
	return nil
}

// reapplyToggle restores a confirmed toggle that a reload answered before
// the update replaced, then refetches so the server has the last word.
func (e *Engine) reapplyToggle(c *Call) {
	completed := c.draft.Completed
	if txn, _, ok := e.store.Mutate(c.id, func(t *task.Task) { t.Completed = completed }); ok {
		txn.Commit()
	}
	c.next = e.Fetch()
	e.logger.Debug("toggle overtaken by reload", "id", c.id, "completed", completed)
}

func (e *Engine) settleFailure(c *Call, err error) error {
	gwErr := &GatewayError{Op: c.op, Err: err}
	e.logger.Error("remote call failed", "op", c.op, "id", c.id, "err", err)

	if c.op == OpFetch {
		e.failFetch(c.seq, err)
		return gwErr
	}

	if c.txn != nil {
		c.txn.Rollback()
	}
	e.notify.Push(failureMessage(c.op), notify.KindError)
	return gwErr
}

func (e *Engine) applyList(seq uint64, tasks []task.Task) {
	if !e.store.ApplyFetch(seq, tasks) {
		e.logger.Debug("stale fetch ignored", "seq", seq)
	}
}

func (e *Engine) failFetch(seq uint64, err error) {
	if !e.store.FailFetch(seq) {
		e.logger.Debug("stale fetch failure ignored", "seq", seq, "err", err)
		return
	}
	e.notify.Push(MsgLoadFailed, notify.KindError)
}

func successMessage(op Op) string {
	switch op {
	case OpCreate:
		return MsgCreated
	case OpUpdate:
		return MsgUpdated
	case OpDelete:
		return MsgDeleted
	}
	return ""
}

func failureMessage(op Op) string {
	switch op {
	case OpCreate:
		return MsgCreateFailed
	case OpUpdate:
		return MsgUpdateFailed
	case OpDelete:
		return MsgDeleteFailed
	case OpToggle:
		return MsgToggleFailed
	}
	return MsgLoadFailed
}
