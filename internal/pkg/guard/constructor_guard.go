// Package guard provides ConstructorGuard, a marker that lets commands, queries and
// value objects tell a constructor-built value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was not
// built by its constructor and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value must be rejected.
//
// Example usage:
//
//	var ErrAddToCartCommandIsNotConstructed = errors.New("AddToCartCommand must be created via NewAddToCartCommand")
//
//	type AddToCartCommand struct {
//	    userID string
//	    item   kernel.LineItem
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c AddToCartCommand) Validate() error {
//	    return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the guarded type only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
