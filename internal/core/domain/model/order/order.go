package order

import (
	"errors"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed order. It is the aggregate root that owns the item
// snapshot, the monetary totals and the lifecycle status.
//
// Order follows these invariants:
//   - Identifier and owning user never change
//   - subtotal equals kernel.SumRounded(items) after every item change
//   - totalAmount equals Round2(subtotal + taxAmount + shippingAmount) after every recompute
//   - updatedAt moves forward whenever the status changes
//
// Tax and shipping are inputs fixed when the order is created. Changing items later
// updates subtotal and total but leaves taxAmount as it was; that is the current
// pricing policy, not an oversight.
type Order struct {
	id                kernel.UUID
	userID            string
	items             []kernel.LineItem
	status            Status
	subtotal          float64
	taxAmount         float64
	shippingAmount    float64
	totalAmount       float64
	shippingAddressID string
	billingAddressID  string
	notes             string
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewOrder creates an empty order in Pending status with a generated identifier.
//
// userID and shippingAddressID are validated by the application layer before the
// aggregate is built; the aggregate only records them.
//
// Example:
//
//	o := order.NewOrder("user-42", "addr-7")
//	item, _ := kernel.NewLineItem("sku-1", "Mug", "MUG-1", 2, 12.5)
//	_ = o.AddItem(item)
//	o.SetTaxAmount(kernel.Round2(o.Subtotal() * 0.08))
func NewOrder(userID, shippingAddressID string) *Order {
	now := time.Now().UTC()
	return &Order{
		id:                kernel.NewUUID(),
		userID:            userID,
		items:             make([]kernel.LineItem, 0),
		status:            Pending,
		shippingAddressID: shippingAddressID,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}
}

// RestoreOrder rebuilds an order from persisted state. Subtotal and total are
// derived from items, tax and shipping rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	items []kernel.LineItem,
	status Status,
	taxAmount, shippingAmount float64,
	shippingAddressID, billingAddressID, notes string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:                id,
		userID:            userID,
		items:             slices.Clone(items),
		status:            status,
		taxAmount:         taxAmount,
		shippingAmount:    shippingAmount,
		shippingAddressID: shippingAddressID,
		billingAddressID:  billingAddressID,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}
	if o.items == nil {
		o.items = make([]kernel.LineItem, 0)
	}
	o.RecomputeTotals()
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// UserID returns the user who placed the order.
func (o *Order) UserID() string { return o.userID }

// Items returns a copy of the item snapshot.
func (o *Order) Items() []kernel.LineItem { return slices.Clone(o.items) }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Subtotal returns the rounded sum of line totals.
func (o *Order) Subtotal() float64 { return o.subtotal }

// TaxAmount returns the tax fixed at creation.
func (o *Order) TaxAmount() float64 { return o.taxAmount }

// ShippingAmount returns the shipping charge fixed at creation.
func (o *Order) ShippingAmount() float64 { return o.shippingAmount }

// TotalAmount returns Round2(subtotal + tax + shipping) as of the last recompute.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// ShippingAddressID returns the shipping address reference.
func (o *Order) ShippingAddressID() string { return o.shippingAddressID }

// BillingAddressID returns the billing address reference, possibly empty.
func (o *Order) BillingAddressID() string { return o.billingAddressID }

// Notes returns the free-text notes. Cancelling or holding an order stores the reason here.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the status last changed.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AddItem appends item and recomputes totals.
func (o *Order) AddItem(item kernel.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	o.RecomputeTotals()
	return nil
}

// RemoveItem removes the line with itemID, recomputes totals and reports whether a
// line was removed.
func (o *Order) RemoveItem(itemID kernel.UUID) bool {
	before := len(o.items)
	o.items = slices.DeleteFunc(o.items, func(item kernel.LineItem) bool {
		return item.ID().IsEqual(itemID)
	})
	o.RecomputeTotals()
	return len(o.items) != before
}

// RecomputeTotals derives subtotal from the items and total from subtotal, tax and
// shipping. Tax and shipping themselves are never re-derived here.
func (o *Order) RecomputeTotals() {
	o.subtotal = kernel.SumRounded(o.items)
	o.totalAmount = kernel.Round2(o.subtotal + o.taxAmount + o.shippingAmount)
}

// SetTaxAmount stores the tax amount and recomputes the total.
func (o *Order) SetTaxAmount(amount float64) {
	o.taxAmount = amount
	o.RecomputeTotals()
}

// SetShippingAmount stores the shipping charge and recomputes the total.
func (o *Order) SetShippingAmount(amount float64) {
	o.shippingAmount = amount
	o.RecomputeTotals()
}

// SetBillingAddressID stores the billing address reference.
func (o *Order) SetBillingAddressID(billingAddressID string) {
	o.billingAddressID = billingAddressID
}

// SetNotes replaces the free-text notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// SetStatus stores newStatus unconditionally and refreshes updatedAt.
//
// It does not consult the lifecycle table. Use ChangeStatus for requested
// transitions; SetStatus exists for callers that have already checked CanTransition.
func (o *Order) SetStatus(newStatus Status) {
	o.status = newStatus
	o.touch()
}

// ChangeStatus applies a requested lifecycle transition.
//
// Business Rules:
//   - target must be reachable from the current status in one step (see CanTransition)
//   - a rejected transition leaves the order untouched
//   - an accepted transition returns the ledger entry that must be appended with it
//
// Returns:
//   - the StatusHistoryEntry {old, new, reason, now} on success
//   - an InvalidTransitionError if the lifecycle forbids the change
func (o *Order) ChangeStatus(target Status, reason string) (StatusHistoryEntry, error) {
	current := o.status
	if !CanTransition(current, target) {
		return StatusHistoryEntry{}, errs.NewInvalidTransitionError(current, target)
	}

	o.SetStatus(target)
	return NewStatusHistoryEntry(current, target, reason, o.updatedAt), nil
}

// ValidateDeletable returns an InvalidStateError unless the order is Pending or Cancelled.
func (o *Order) ValidateDeletable() error {
	if !o.status.IsDeletable() {
		return errs.NewInvalidStateError("delete order", o.status)
	}
	return nil
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = slices.Clone(o.items)
	return &clone
}

func (o *Order) touch() {
	now := time.Now().UTC()
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Nanosecond)
	}
	o.updatedAt = now
}
