package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrItemInputIsNotConstructed = errors.New("ItemInput must be created via NewItemInput constructor")

// ItemInput carries one requested line: what to add to a cart or put on an order.
// Validation matches kernel.NewLineItem: productId non-blank, quantity > 0, unitPrice >= 0.
type ItemInput struct {
	productID   string
	productName string
	sku         string
	quantity    int
	unitPrice   float64

	guard guard.ConstructorGuard
}

// NewItemInput validates and creates an ItemInput.
func NewItemInput(productID, productName, sku string, quantity int, unitPrice float64) (ItemInput, error) {
	if _, err := kernel.NewLineItem(productID, productName, sku, quantity, unitPrice); err != nil {
		return ItemInput{}, err
	}

	return ItemInput{
		productID:   productID,
		productName: productName,
		sku:         sku,
		quantity:    quantity,
		unitPrice:   unitPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the input was created through the constructor.
func (i ItemInput) Validate() error {
	return i.guard.Validate(ErrItemInputIsNotConstructed)
}

// ProductID returns the product identifier.
func (i ItemInput) ProductID() string { return i.productID }

// ProductName returns the display name of the product.
func (i ItemInput) ProductName() string { return i.productName }

// SKU returns the stock keeping unit.
func (i ItemInput) SKU() string { return i.sku }

// Quantity returns the requested quantity.
func (i ItemInput) Quantity() int { return i.quantity }

// UnitPrice returns the price of one unit.
func (i ItemInput) UnitPrice() float64 { return i.unitPrice }

// LineItem builds a fresh line with a new identifier.
func (i ItemInput) LineItem() (kernel.LineItem, error) {
	if err := i.Validate(); err != nil {
		return kernel.LineItem{}, err
	}
	return kernel.NewLineItem(i.productID, i.productName, i.sku, i.quantity, i.unitPrice)
}
