package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand removes the line for one product from the user's cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	userID    string
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates the command. Neither argument may be blank.
func NewRemoveFromCartCommand(userID, productID string) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c RemoveFromCartCommand) UserID() string {
	return c.userID
}

// ProductID returns the product whose line is removed.
func (c RemoveFromCartCommand) ProductID() string {
	return c.productID
}

func (c *RemoveFromCartCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RemoveFromCartCommand) setProductID(productID string) error {
	if err := kernel.ValidateProductID(productID); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
