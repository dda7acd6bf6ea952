// Package lookup holds what the flight lookup adapters share: the error
// type they report and its retry classification.
package lookup

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoFlights is returned when a source has no data configured for the requested route.
// A source that answers with zero listings returns an empty result instead.
var ErrNoFlights = errors.New("no flights found")

// Error is a failure reported by a lookup adapter.
type Error struct {
	// Lookup is the adapter name
	Lookup string

	// Err is the underlying error
	Err error

	// Retryable tells the resilience layer whether calling again may help
	Retryable bool
}

// NewError creates an Error.
func NewError(lookup string, err error, retryable bool) *Error {
	return &Error{Lookup: lookup, Err: err, Retryable: retryable}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("lookup %s: %v", e.Lookup, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is worth another attempt. Context errors
// never are; unknown errors are treated as transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var le *Error
	if errors.As(err, &le) {
		return le.Retryable
	}
	return true
}
