package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests one lifecycle transition of an order.
//
// The named constructors (NewConfirmOrderCommand, NewCancelOrderCommand, ...) build
// the same command for a fixed target status. Cancel and hold additionally record the
// reason as the order's notes.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	status        order.Status
	reason        string
	reasonAsNotes bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates the command. orderID must be a constructed
// UUID and status a known, non-Unknown status.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status, reason string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// NewConfirmOrderCommand requests Pending -> Confirmed.
func NewConfirmOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Confirmed, "")
}

// NewProcessOrderCommand requests a move to Processing.
func NewProcessOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Processing, "")
}

// NewShipOrderCommand requests Processing -> Shipped.
func NewShipOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Shipped, "")
}

// NewDeliverOrderCommand requests Shipped -> Delivered.
func NewDeliverOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Delivered, "")
}

// NewRefundOrderCommand requests Delivered -> Refunded.
func NewRefundOrderCommand(orderID kernel.UUID) (UpdateOrderStatusCommand, error) {
	return NewUpdateOrderStatusCommand(orderID, order.Refunded, "")
}

// NewCancelOrderCommand requests cancellation; reason also becomes the order notes.
func NewCancelOrderCommand(orderID kernel.UUID, reason string) (UpdateOrderStatusCommand, error) {
	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Cancelled, reason)
	cmd.reasonAsNotes = err == nil
	return cmd, err
}

// NewHoldOrderCommand puts the order on hold; reason also becomes the order notes.
func NewHoldOrderCommand(orderID kernel.UUID, reason string) (UpdateOrderStatusCommand, error) {
	cmd, err := NewUpdateOrderStatusCommand(orderID, order.OnHold, reason)
	cmd.reasonAsNotes = err == nil
	return cmd, err
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the requested status.
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// Reason returns the free-text reason recorded in the history entry.
func (c UpdateOrderStatusCommand) Reason() string { return c.reason }

// ReasonAsNotes reports whether the reason also replaces the order notes.
func (c UpdateOrderStatusCommand) ReasonAsNotes() bool { return c.reasonAsNotes }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
