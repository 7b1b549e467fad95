package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
)

// ErrCacheMiss is returned by CartCache.Get when no snapshot is cached for the user.
var ErrCacheMiss = errors.New("cache miss")

// CartCache keeps read snapshots of carts keyed by user.
// The repository stays the source of truth; handlers invalidate the entry after every
// committed cart mutation.
type CartCache interface {
	Get(ctx context.Context, userID string) (*cart.Cart, error)
	Set(ctx context.Context, userID string, snapshot *cart.Cart) error
	Delete(ctx context.Context, userID string) error
}
