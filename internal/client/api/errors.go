package api

import (
	"errors"
	"fmt"
)

// TransportError wraps a failure to reach the remote system or to complete
// a request at the protocol level. Transport-shaped failures are absorbed by
// the sync coordinator: the mutation is queued and retried indefinitely.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConflictError reports that the remote state has diverged incompatibly from
// the queued intent (for example, the shipment was validated remotely while
// a local cancel was queued). Conflict-shaped failures are surfaced and never
// retried automatically.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote conflict (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("remote conflict (%s)", e.Code)
}

// IsTransport reports whether err is transport-shaped.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsConflict reports whether err is conflict-shaped.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
