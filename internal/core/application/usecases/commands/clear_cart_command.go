package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the user's cart without deleting it.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates the command. userID must not be blank.
func NewClearCartCommand(userID string) (ClearCartCommand, error) {
	cmd := ClearCartCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setUserID(userID); err != nil {
		return ClearCartCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c ClearCartCommand) UserID() string {
	return c.userID
}

func (c *ClearCartCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
