package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// GetOrderQueryHandler reads single orders.
// Every method returns an ObjectNotFoundError for an unknown order.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates the handler.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}
	return NewOrderResponse(o), nil
}

// HandleTotal returns the order total.
func (h GetOrderQueryHandler) HandleTotal(ctx context.Context, query GetOrderQuery) (float64, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return 0, err
	}
	return o.TotalAmount(), nil
}

// HandleStatus returns the current status.
func (h GetOrderQueryHandler) HandleStatus(ctx context.Context, query GetOrderQuery) (order.Status, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return order.Unknown, err
	}
	return o.Status(), nil
}

// HandleAvailableTransitions returns the statuses reachable in one step.
// The slice is empty for terminal orders.
func (h GetOrderQueryHandler) HandleAvailableTransitions(
	ctx context.Context,
	query GetOrderQuery,
) ([]order.Status, error) {
	o, err := h.load(ctx, query)
	if err != nil {
		return nil, err
	}
	return o.Status().AvailableTransitions(), nil
}

func (h GetOrderQueryHandler) load(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
}
