package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"storefront/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
// NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product entry of a cart or an order.
//
// LineItem has value semantics: the With* methods return an updated copy, and the
// line total is recomputed every time quantity or unit price changes, so a stored
// LineItem never carries a stale total.
type LineItem struct {
	id          UUID
	productID   string
	productName string
	sku         string
	quantity    int
	unitPrice   float64
	lineTotal   float64
}

// NewLineItem creates a line with a freshly generated identifier.
//
// Validation rules:
//   - productID must not be blank
//   - quantity must be greater than 0
//   - unitPrice must be a finite, non-negative amount
//
// All violations are reported together through errors.Join.
func NewLineItem(productID, productName, sku string, quantity int, unitPrice float64) (LineItem, error) {
	return RestoreLineItem(NewUUID(), productID, productName, sku, quantity, unitPrice)
}

// RestoreLineItem rebuilds a line with a known identifier, typically from persistence.
// It applies the same validation as NewLineItem and derives the line total.
func RestoreLineItem(
	id UUID,
	productID, productName, sku string,
	quantity int,
	unitPrice float64,
) (LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		ValidateProductID(productID),
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:          id,
		productID:   productID,
		productName: productName,
		sku:         sku,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   LineTotal(quantity, unitPrice),
	}, nil
}

// ValidateProductID rejects blank product identifiers.
func ValidateProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func validateUnitPrice(unitPrice float64) error {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is not a finite amount", unitPrice))
	}
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%.2f is negative", unitPrice))
	}
	return nil
}

// Validate ensures the line was built by one of the constructors.
func (l LineItem) Validate() error {
	if l.id.Validate() != nil {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line's identifier.
func (l LineItem) ID() UUID { return l.id }

// ProductID returns the catalog product the line refers to.
func (l LineItem) ProductID() string { return l.productID }

// ProductName returns the product name captured when the line was created.
func (l LineItem) ProductName() string { return l.productName }

// SKU returns the stock keeping unit captured when the line was created.
func (l LineItem) SKU() string { return l.sku }

// Quantity returns the number of units.
func (l LineItem) Quantity() int { return l.quantity }

// UnitPrice returns the price of a single unit.
func (l LineItem) UnitPrice() float64 { return l.unitPrice }

// LineTotal returns round2(quantity * unitPrice).
func (l LineItem) LineTotal() float64 { return l.lineTotal }

// WithQuantity returns a copy with the new quantity and a recomputed line total.
// Callers guarantee quantity > 0; zero or negative quantities mean removal and are
// handled by the owning aggregate.
func (l LineItem) WithQuantity(quantity int) LineItem {
	l.quantity = quantity
	l.lineTotal = LineTotal(l.quantity, l.unitPrice)
	return l
}

// WithUnitPrice returns a copy with the new unit price and a recomputed line total.
func (l LineItem) WithUnitPrice(unitPrice float64) LineItem {
	l.unitPrice = unitPrice
	l.lineTotal = LineTotal(l.quantity, l.unitPrice)
	return l
}
