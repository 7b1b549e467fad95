package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// StatusHistoryRepository is the append-only ledger of accepted status transitions.
type StatusHistoryRepository interface {
	// Append records entry for orderID. Entries are never updated or removed individually.
	Append(ctx context.Context, orderID kernel.UUID, entry order.StatusHistoryEntry) error

	// Get returns the entries of orderID in append order.
	// An order without transitions yields an empty slice.
	Get(ctx context.Context, orderID kernel.UUID) ([]order.StatusHistoryEntry, error)
}
