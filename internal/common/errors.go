// Package common defines sentinel errors and shared error types used across
// the service layers. Callers should use errors.Is to match the sentinels.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")
)

// StoreError wraps a failure reported by the relational store. Op names the
// operation that failed (e.g. "manuscripts.list"), Err carries the cause.
// Store errors are surfaced as-is and never retried by this layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
