package board

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id that is not in
// the local state.
var ErrNotFound = errors.New("not found")

// LoadError wraps a failed initial fetch. The store keeps whatever state it
// had before the load.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError rejects an action before any persistence call is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PersistenceError reports a mutation whose network call failed after the
// optimistic local application. Under the default report-only policy the
// local state is NOT reverted, so client and server may be out of sync
// until the next Load.
type PersistenceError struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
