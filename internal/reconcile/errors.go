package reconcile

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/taskboard/internal/task"
)

// ErrConfirmationDeclined is returned when the user says no to a
// destructive action. It is a normal abort and is never notified.
var ErrConfirmationDeclined = errors.New("confirmation declined")

// ErrClosed is returned by Settle after the engine has been closed.
var ErrClosed = errors.New("engine closed")

// ValidationError is a client-side rejection that never reaches the network.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GatewayError wraps any failure of the remote collection during op.
type GatewayError struct {
	Op  Op
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsGateway reports whether err is a GatewayError.
func IsGateway(err error) bool {
	var g *GatewayError
	return errors.As(err, &g)
}

func validate(d task.Draft) error {
	if err := d.Validate(); err != nil {
		return &ValidationError{Field: "title", Err: err}
	}
	return nil
}
