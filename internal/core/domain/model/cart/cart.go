package cart

import (
	"errors"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created through
	// NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the aggregate root for a user's shopping cart.
//
// Cart follows these invariants:
//   - Identifier and owning user never change
//   - No two lines share a product identifier
//   - totalAmount equals kernel.SumRounded(items) after every mutation
//   - updatedAt moves forward on every mutation
type Cart struct {
	id          kernel.UUID
	userID      string
	items       []kernel.LineItem
	totalAmount float64
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewCart creates an empty cart for userID with a generated identifier.
//
// Returns a ValueIsRequiredError when userID is blank.
func NewCart(userID string) (*Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	now := time.Now().UTC()
	return &Cart{
		id:            kernel.NewUUID(),
		userID:        userID,
		items:         make([]kernel.LineItem, 0),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCart rebuilds a cart from persisted state. The total is derived from the
// items rather than trusted from storage.
func RestoreCart(
	id kernel.UUID,
	userID string,
	items []kernel.LineItem,
	createdAt, updatedAt time.Time,
) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	c := &Cart{
		id:            id,
		userID:        userID,
		items:         slices.Clone(items),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if c.items == nil {
		c.items = make([]kernel.LineItem, 0)
	}
	c.totalAmount = kernel.SumRounded(c.items)
	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// IsEqual compares two carts by identifier.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID { return c.id }

// UserID returns the owning user.
func (c *Cart) UserID() string { return c.userID }

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []kernel.LineItem { return slices.Clone(c.items) }

// TotalAmount returns the rounded sum of all line totals.
func (c *Cart) TotalAmount() float64 { return c.totalAmount }

// CreatedAt returns when the cart was created.
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the cart was last mutated.
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// ItemCount returns the sum of all line quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity()
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// FindItem returns the line for productID, if any.
func (c *Cart) FindItem(productID string) (kernel.LineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.items[i], true
	}
	return kernel.LineItem{}, false
}

// AddItem adds a line to the cart.
//
// If a line for the same product exists, its quantity grows by item's quantity while
// its unit price is kept; otherwise item is appended. The total is recomputed in
// both cases.
//
// Returns ErrLineItemIsNotConstructed for a zero-value item.
func (c *Cart) AddItem(item kernel.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(item.ProductID()); i >= 0 {
		existing := c.items[i]
		c.items[i] = existing.WithQuantity(existing.Quantity() + item.Quantity())
	} else {
		c.items = append(c.items, item)
	}

	c.recalculateTotal()
	return nil
}

// RemoveItem removes the line for productID and reports whether one was removed.
// The total is only recomputed when something changed.
func (c *Cart) RemoveItem(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}

	c.items = slices.Delete(c.items, i, i+1)
	c.recalculateTotal()
	return true
}

// UpdateItemQuantity sets the quantity of the line for productID.
//
// Returns false when the cart has no such line. A quantity of zero or less removes
// the line.
func (c *Cart) UpdateItemQuantity(productID string, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}

	c.items[i] = c.items[i].WithQuantity(quantity)
	c.recalculateTotal()
	return true
}

// Clear removes every line but keeps the cart itself.
func (c *Cart) Clear() {
	c.items = make([]kernel.LineItem, 0)
	c.totalAmount = 0
	c.touch()
}

// Clone returns an independent copy of the cart. Repositories hand out clones so that
// a caller's unsaved changes are never visible to anyone else.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.items = slices.Clone(c.items)
	return &clone
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(item kernel.LineItem) bool {
		return item.ProductID() == productID
	})
}

func (c *Cart) recalculateTotal() {
	c.totalAmount = kernel.SumRounded(c.items)
	c.touch()
}

// touch keeps updatedAt strictly increasing even when the clock does not advance
// between two mutations.
func (c *Cart) touch() {
	now := time.Now().UTC()
	if !now.After(c.updatedAt) {
		now = c.updatedAt.Add(time.Nanosecond)
	}
	c.updatedAt = now
}
