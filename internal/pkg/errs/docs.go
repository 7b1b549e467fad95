// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed bounds
//   - ObjectNotFoundError: For when a cart, order or cart line cannot be found
//   - InvalidTransitionError: For order status changes the lifecycle does not allow
//   - InvalidStateError: For operations the aggregate's current state forbids
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transports classify errors with errors.Is against the sentinels, or with
// IsValidation for the whole family of input errors.
package errs
