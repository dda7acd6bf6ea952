package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the date search domain.
var (
	// ErrInvalidRequest is returned when a search request fails field validation.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrInvalidDateSpec is returned for an unparseable month name or a malformed date string.
	ErrInvalidDateSpec = errors.New("invalid date specification")

	// ErrFetchFailed marks a failed lookup for a single date.
	ErrFetchFailed = errors.New("date fetch failed")

	// ErrAllFetchesFailed is returned when not a single date could be fetched.
	ErrAllFetchesFailed = errors.New("all date fetches failed")

	// ErrUnsupportedTripType is returned for trip types the lookup cannot execute yet.
	ErrUnsupportedTripType = errors.New("unsupported trip type")

	// ErrSnapshotNotFound is returned when no stored aggregate exists for a search id.
	ErrSnapshotNotFound = errors.New("search snapshot not found")
)

// FetchError records why the lookup for one date failed.
// It matches ErrFetchFailed with errors.Is and unwraps to the cause.
type FetchError struct {
	// Date is the ISO date whose lookup failed
	Date string

	// Cause is the underlying lookup, normalization or cancellation error
	Cause error
}

// NewFetchError wraps cause as the failure of the given date.
func NewFetchError(date string, cause error) *FetchError {
	return &FetchError{Date: date, Cause: cause}
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("fetch %s: failed", e.Date)
	}
	return fmt.Sprintf("fetch %s: %v", e.Date, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
