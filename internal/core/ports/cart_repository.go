// Package ports defines the contracts between the storefront core and its adapters.
// Handlers depend only on these interfaces; memory, postgres, redis and kafka adapters
// implement them.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A user owns at most one cart, so the repository maintains a userID index next to
// the primary key.
type CartRepository interface {
	// Save inserts or replaces the cart and keeps the userID index current.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart by its identifier.
	// Returns an ObjectNotFoundError when no cart has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByUserID retrieves the cart owned by userID.
	// Returns an ObjectNotFoundError when the user has no cart.
	GetByUserID(ctx context.Context, userID string) (*cart.Cart, error)

	// GetAll returns at most limit carts after skipping the first skip, ordered by
	// creation time and then identifier.
	GetAll(ctx context.Context, skip, limit int) ([]*cart.Cart, error)

	// GetUpdatedBefore returns the carts whose last mutation happened before t.
	GetUpdatedBefore(ctx context.Context, t time.Time) ([]*cart.Cart, error)

	// Delete removes the cart and its userID index entry.
	// Returns an ObjectNotFoundError when no cart has that identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByUserID removes the cart owned by userID.
	// Returns an ObjectNotFoundError when the user has no cart.
	DeleteByUserID(ctx context.Context, userID string) error

	// Count returns the number of stored carts.
	Count(ctx context.Context) (int64, error)
}
