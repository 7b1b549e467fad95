package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order in Pending status.
//
// Example:
//
//	mug, _ := NewItemInput("p-1", "Mug", "MUG-1", 2, 25.00)
//	cmd, err := NewCreateOrderCommand("user-42", []ItemInput{mug}, "addr-1")
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithShippingAmount(9.99).WithNotes("leave at the door")
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID            string
	items             []ItemInput
	shippingAddressID string
	billingAddressID  string
	notes             string
	taxRate           float64
	shippingAmount    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates the command with the required fields.
// userID and shippingAddressID must not be blank and items must not be empty.
// Optional fields are set through the With methods.
func NewCreateOrderCommand(userID string, items []ItemInput, shippingAddressID string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setShippingAddressID(shippingAddressID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithBillingAddressID returns a copy with the billing address set.
func (c CreateOrderCommand) WithBillingAddressID(billingAddressID string) CreateOrderCommand {
	c.billingAddressID = billingAddressID
	return c
}

// WithNotes returns a copy with free-text notes.
func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = notes
	return c
}

// WithTaxRate returns a copy with an explicit tax rate. Zero or less means the
// handler's default rate.
func (c CreateOrderCommand) WithTaxRate(rate float64) CreateOrderCommand {
	c.taxRate = rate
	return c
}

// WithShippingAmount returns a copy with the shipping charge. The amount is checked
// when the order is priced.
func (c CreateOrderCommand) WithShippingAmount(amount float64) CreateOrderCommand {
	c.shippingAmount = amount
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the customer.
func (c CreateOrderCommand) UserID() string { return c.userID }

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// ShippingAddressID returns the shipping address reference.
func (c CreateOrderCommand) ShippingAddressID() string { return c.shippingAddressID }

// BillingAddressID returns the billing address reference, possibly empty.
func (c CreateOrderCommand) BillingAddressID() string { return c.billingAddressID }

// Notes returns the free-text notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// TaxRate returns the requested rate; zero means "use the default".
func (c CreateOrderCommand) TaxRate() float64 { return c.taxRate }

// ShippingAmount returns the shipping charge.
func (c CreateOrderCommand) ShippingAmount() float64 { return c.shippingAmount }

func (c *CreateOrderCommand) setUserID(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setShippingAddressID(shippingAddressID string) error {
	if strings.TrimSpace(shippingAddressID) == "" {
		return errs.NewValueIsRequiredError("shippingAddressId")
	}
	c.shippingAddressID = shippingAddressID
	return nil
}
