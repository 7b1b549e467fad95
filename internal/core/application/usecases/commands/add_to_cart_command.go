package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand adds an item to the user's cart. A line for the same product is
// merged: quantities are summed and the existing unit price is kept.
//
// Example:
//
//	item, _ := NewItemInput("sku-1", "Mug", "MUG-1", 2, 12.5)
//	cmd, err := NewAddToCartCommand("user-42", item)
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	userID string
	item   ItemInput

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates the command. userID must not be blank and item must be
// built by NewItemInput.
func NewAddToCartCommand(userID string, item ItemInput) (AddToCartCommand, error) {
	cmd := AddToCartCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItem(item),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddToCartCommand) UserID() string {
	return c.userID
}

// Item returns the requested line.
func (c AddToCartCommand) Item() ItemInput {
	return c.item
}

func (c *AddToCartCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AddToCartCommand) setItem(item ItemInput) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.item = item
	return nil
}
