package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand sets the quantity of one cart line.
// A quantity of zero removes the line; negative quantities are rejected.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	userID    string
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemQuantityCommand creates the command.
func NewUpdateCartItemQuantityCommand(userID, productID string, quantity int) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c UpdateCartItemQuantityCommand) UserID() string {
	return c.userID
}

// ProductID returns the product whose line changes.
func (c UpdateCartItemQuantityCommand) ProductID() string {
	return c.productID
}

// Quantity returns the new quantity.
func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemQuantityCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setProductID(productID string) error {
	if err := kernel.ValidateProductID(productID); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	c.quantity = quantity
	return nil
}
