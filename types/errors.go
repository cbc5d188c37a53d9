package types

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid session transition")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrNoIdentity         = errors.New("no signed-in user")
	ErrNotFound           = errors.New("record not found")
)

// StoreWriteError reports a failed insert or update. The action is left retryable.
type StoreWriteError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// StoreReadError reports a failed query or count.
type StoreReadError struct {
	Collection string
	Err        error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Collection, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }
