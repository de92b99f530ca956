package engine

import (
	"errors"
	"fmt"
)

// OpError represents a failure of a lifecycle operation.
//
// Only two conditions are fatal to an operation:
//   - Not found: dismiss referenced an id with no backing record
//   - Persistence: the store could not write or delete a record file
//
// Channel and runner failures are never OpErrors; they go to the
// diagnostics logger only.
type OpError struct {
	// Code identifies the failure category.
	Code OpErrorCode

	// ID identifies the affected record, when there is one.
	ID string

	// Err is the underlying cause (for persistence failures).
	Err error
}

// OpErrorCode categorizes operation failures.
type OpErrorCode string

const (
	// ErrCodeNotFound indicates a dismissed id had no backing record.
	ErrCodeNotFound OpErrorCode = "NOT_FOUND"

	// ErrCodePersistence indicates a store write or delete failed.
	ErrCodePersistence OpErrorCode = "PERSISTENCE"
)

// Error implements the error interface.
func (e *OpError) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: no alert with id %q", e.Code, e.ID)
	default:
		if e.ID != "" {
			return fmt.Sprintf("%s: alert %s: %v", e.Code, e.ID, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the error is a not-found failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeNotFound
	}
	return false
}

// NewNotFoundError creates an OpError for an unknown record id.
func NewNotFoundError(id string) *OpError {
	return &OpError{Code: ErrCodeNotFound, ID: id}
}

// NewPersistenceError wraps a store failure.
func NewPersistenceError(id string, err error) *OpError {
	return &OpError{Code: ErrCodePersistence, ID: id, Err: err}
}
