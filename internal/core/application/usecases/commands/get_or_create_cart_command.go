package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrCreateCartCommandIsNotConstructed = errors.New(
	"GetOrCreateCartCommand must be created via NewGetOrCreateCartCommand constructor",
)

// GetOrCreateCartCommand returns the user's cart, creating it on first access.
// Repeating the command for the same user always yields the same cart.
type GetOrCreateCartCommand struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetOrCreateCartCommand creates the command. userID must not be blank.
func NewGetOrCreateCartCommand(userID string) (GetOrCreateCartCommand, error) {
	cmd := GetOrCreateCartCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setUserID(userID); err != nil {
		return GetOrCreateCartCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GetOrCreateCartCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c GetOrCreateCartCommand) UserID() string {
	return c.userID
}

func (c *GetOrCreateCartCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	return nil
}
