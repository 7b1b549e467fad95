package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrDeleteCartCommandIsNotConstructed = errors.New(
	"DeleteCartCommand must be created via NewDeleteCartCommand constructor",
)

// DeleteCartCommand removes the user's cart entirely.
type DeleteCartCommand struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewDeleteCartCommand creates the command. userID must not be blank.
func NewDeleteCartCommand(userID string) (DeleteCartCommand, error) {
	cmd := DeleteCartCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setUserID(userID); err != nil {
		return DeleteCartCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCartCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c DeleteCartCommand) UserID() string {
	return c.userID
}

func (c *DeleteCartCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
