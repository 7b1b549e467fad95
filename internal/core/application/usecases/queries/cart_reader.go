package queries

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"
)

// cartReader loads carts cache-aside.
//
// A miss is filled while holding the cart key lock. Writers hold the same lock
// until they have invalidated the cache, so a snapshot loaded here can never be
// cached after a newer commit.
type cartReader struct {
	uowFactory ports.UnitOfWorkFactory
	locker     ports.KeyLocker
	cache      ports.CartCache
	logger     *slog.Logger
}

func (r cartReader) load(ctx context.Context, userID string) (*cart.Cart, error) {
	cached, err := r.cache.Get(ctx, userID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		r.logger.WarnContext(ctx, "cart cache read failed", "userId", userID, "error", err)
	}

	unlock := r.locker.Lock(keylock.CartKey(userID))
	defer unlock()

	c, err := r.uowFactory.Create().CartRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = r.cache.Set(ctx, userID, c); err != nil {
		r.logger.WarnContext(ctx, "cart cache write failed", "userId", userID, "error", err)
	}
	return c, nil
}
