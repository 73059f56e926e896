// Package gateway talks to the remote task collection over HTTP.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/taskboard/internal/task"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Error is returned for transport failures and non-2xx responses.
type Error struct {
	Op         string // "list", "create", "update", "delete"
	StatusCode int    // 0 for transport failures
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s tasks: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s tasks: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrStatus is wrapped by Error for non-2xx responses.
var ErrStatus = errors.New("unexpected status")

// HTTP implements task.Gateway against a REST collection at BaseURL/tasks.
type HTTP struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  *log.Logger
}

// Option configures the HTTP gateway.
type Option func(*HTTP)

// WithClient sets the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) { h.timeout = d }
}

// WithLogger logs each request at debug level.
func WithLogger(l *log.Logger) Option {
	return func(h *HTTP) { h.logger = l }
}

// New creates a gateway for the collection rooted at baseURL, for example
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var _ task.Gateway = (*HTTP)(nil)

// List fetches the whole collection.
func (h *HTTP) List(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := h.do(ctx, "list", http.MethodGet, h.collectionURL(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// Create posts a new task without an ID.
func (h *HTTP) Create(ctx context.Context, d task.Draft) error {
	return h.do(ctx, "create", http.MethodPost, h.collectionURL(), d, nil)
}

// Update puts the full record for id.
func (h *HTTP) Update(ctx context.Context, id int64, d task.Draft) error {
	return h.do(ctx, "update", http.MethodPut, h.itemURL(id), d, nil)
}

// Delete removes the task with id.
func (h *HTTP) Delete(ctx context.Context, id int64) error {
	return h.do(ctx, "delete", http.MethodDelete, h.itemURL(id), nil, nil)
}

func (h *HTTP) collectionURL() string {
	return h.baseURL + "/tasks"
}

func (h *HTTP) itemURL(id int64) string {
	return h.collectionURL() + "/" + strconv.FormatInt(id, 10)
}

func (h *HTTP) do(ctx context.Context, op, method, url string, body, out any) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encoding body: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.debug(op, method, url, 0, start, err)
		return &Error{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	h.debug(op, method, url, resp.StatusCode, start, nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrStatus}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func (h *HTTP) debug(op, method, url string, status int, start time.Time, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Debug("gateway request",
		"op", op,
		"method", method,
		"url", url,
		"status", status,
		"elapsed", time.Since(start),
		"err", err,
	)
}
