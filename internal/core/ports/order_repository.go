package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Save inserts or replaces the order and keeps the userID index current.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when no order has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUserID returns every order placed by userID, oldest first.
	// An unknown user yields an empty slice, not an error.
	GetByUserID(ctx context.Context, userID string) ([]*order.Order, error)

	// GetByStatus returns every order currently in status, oldest first.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll returns at most limit orders after skipping the first skip, ordered by
	// creation time and then identifier.
	GetAll(ctx context.Context, skip, limit int) ([]*order.Order, error)

	// Delete removes the order and its userID index entry.
	// Returns an ObjectNotFoundError when no order has that identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}
