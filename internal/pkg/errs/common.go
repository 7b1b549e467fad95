package errs

import (
	"errors"
	"strings"
)

// sanitize keeps user supplied values on one line inside error messages.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// IsValidation reports whether err belongs to the input validation family:
// a required value was missing, malformed, or out of range.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}
