package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for operations forbidden by an aggregate's current state.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError names the refused operation and the state that refused it.
type InvalidStateError struct {
	Operation string
	State     string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for operation attempted in state.
func NewInvalidStateError(operation string, state fmt.Stringer) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		State:     state.String(),
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError that carries cause.
func NewInvalidStateErrorWithCause(operation string, state fmt.Stringer, cause error) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		State:     state.String(),
		Cause:     cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s in %s (cause: %v)", ErrInvalidState, e.Operation, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s in %s", ErrInvalidState, e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
