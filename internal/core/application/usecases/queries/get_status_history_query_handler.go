package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetStatusHistoryQueryHandler reads status ledgers.
type GetStatusHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetStatusHistoryQueryHandler creates the handler.
func NewGetStatusHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the entries oldest first. An order that never changed status has
// an empty history; an unknown order is an ObjectNotFoundError.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.OrderRepository().Get(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	entries, err := uow.StatusHistoryRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	history := make([]StatusHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, StatusHistoryResponse{
			From:      entry.From(),
			To:        entry.To(),
			Reason:    entry.Reason(),
			Timestamp: entry.Timestamp(),
		})
	}
	return history, nil
}
