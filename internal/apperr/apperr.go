// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is
var (
	// ErrInvalidInput marks malformed or out-of-range input, rejected
	// before any computation or write
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a bed, plant or event id with no record
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a placement the detector reported against and the
	// caller did not override
	ErrConflict = errors.New("placement conflict")

	// ErrStoreUnavailable marks a transient record-store failure; callers
	// may retry, the service holds no partial writes
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Invalidf wraps ErrInvalidInput with a formatted reason
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// NotFoundf wraps ErrNotFound with a formatted reason
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Unavailable wraps a store error as retryable
func Unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
