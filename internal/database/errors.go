package database

import (
	"errors"
	"fmt"
)

// StoreOp classifies where a store operation failed.
type StoreOp string

const (
	StoreOpOpen     StoreOp = "open"
	StoreOpPrepare  StoreOp = "prepare"
	StoreOpStep     StoreOp = "step"
	StoreOpNotFound StoreOp = "notFound"
)

// StoreError wraps a database failure with the operation kind. Callers decide
// what to do with it; the store never recovers internally.
type StoreError struct {
	Op  StoreOp
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func stepErr(format string, args ...interface{}) error {
	return &StoreError{Op: StoreOpStep, Err: fmt.Errorf(format, args...)}
}

// IsNotFound reports whether err marks a missing row.
func IsNotFound(err error) bool {
	var sErr *StoreError
	return errors.As(err, &sErr) && sErr.Op == StoreOpNotFound
}
