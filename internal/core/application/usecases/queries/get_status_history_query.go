package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
)

// GetStatusHistoryQuery retrieves the ledger of accepted transitions of an order.
type GetStatusHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates the query.
func NewGetStatusHistoryQuery(orderID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}
	return GetStatusHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}
