package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders.
//
// The order starts Pending with one line per requested item. Tax is computed once,
// at creation, as Round2(subtotal * rate); shipping is taken from the command and
// must be a finite, non-negative amount.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.OrderPricer
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates the handler. A defaultTaxRate of zero or less
// falls back to services.DefaultTaxRate.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	defaultTaxRate float64,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(defaultTaxRate),
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle builds, prices and persists the order and returns it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder := order.NewOrder(cmd.UserID(), cmd.ShippingAddressID())
	for _, input := range cmd.Items() {
		item, err := input.LineItem()
		if err != nil {
			return nil, err
		}
		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	if err := h.pricer.Price(newOrder, cmd.TaxRate(), cmd.ShippingAmount()); err != nil {
		return nil, err
	}
	newOrder.SetBillingAddressID(cmd.BillingAddressID())
	newOrder.SetNotes(cmd.Notes())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Save(ctx, newOrder); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"orderId", newOrder.ID().String(),
		"userId", newOrder.UserID(),
		"total", newOrder.TotalAmount(),
	)
	return newOrder, nil
}
