package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ListOrdersQueryHandler reads order collections.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListOrdersQueryHandler creates the handler.
func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the selected orders ordered by creation time. No match is an
// empty slice, never an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	var (
		orders []*order.Order
		err    error
	)
	switch {
	case query.UserID() != "":
		orders, err = repo.GetByUserID(ctx, query.UserID())
	case query.Status() != order.Unknown:
		orders, err = repo.GetByStatus(ctx, query.Status())
	default:
		orders, err = repo.GetAll(ctx, query.Skip(), query.Limit())
	}
	if err != nil {
		return nil, err
	}

	return newOrderResponses(orders), nil
}

// Count returns the number of stored orders.
func (h ListOrdersQueryHandler) Count(ctx context.Context) (int64, error) {
	return h.uowFactory.Create().OrderRepository().Count(ctx)
}
