package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for lifecycle changes that are not allowed
// from the aggregate's current state.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError records the rejected from/to pair. From and To hold the
// human-readable status names so this package stays free of domain imports.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the from -> to pair.
func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from.String(),
		To:   to.String(),
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s from %s to %s (cause: %v)", ErrInvalidTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
