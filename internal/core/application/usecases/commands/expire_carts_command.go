package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpireCartsCommandIsNotConstructed = errors.New(
	"ExpireCartsCommand must be created via NewExpireCartsCommand constructor",
)

// ExpireCartsCommand deletes every cart not modified since cutoff.
type ExpireCartsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireCartsCommand creates the command. cutoff must not be zero.
func NewExpireCartsCommand(cutoff time.Time) (ExpireCartsCommand, error) {
	if cutoff.IsZero() {
		return ExpireCartsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return ExpireCartsCommand{cutoff: cutoff, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireCartsCommand) Validate() error {
	return c.guard.Validate(ErrExpireCartsCommandIsNotConstructed)
}

// Cutoff returns the instant before which carts count as abandoned.
func (c ExpireCartsCommand) Cutoff() time.Time {
	return c.cutoff
}
