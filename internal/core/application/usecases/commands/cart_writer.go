package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/keylock"
)

// cartWriter runs read-modify-write sequences on a user's cart. The whole
// load, mutate, save and commit sequence holds the lock for the user's cart key.
type cartWriter struct {
	uowFactory CartUoWFactory
	locker     ports.KeyLocker
	cache      ports.CartCache
	logger     *slog.Logger
}

func newCartWriter(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) cartWriter {
	return cartWriter{
		uowFactory: uowFactory,
		locker:     locker,
		cache:      cache,
		logger:     logger,
	}
}

// mutate loads the user's cart, creating an empty one when the user has none,
// applies fn and persists the result. Nothing is saved when fn fails.
func (w cartWriter) mutate(ctx context.Context, userID string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	unlock := w.locker.Lock(keylock.CartKey(userID))
	defer unlock()

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		aggregate, err = cart.NewCart(userID)
	}
	if err != nil {
		return nil, err
	}

	if err = fn(aggregate); err != nil {
		return nil, err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	w.invalidate(ctx, userID)
	return aggregate, nil
}

// invalidate drops the cached snapshot. The commit already happened, so a cache
// failure is logged and otherwise ignored; the entry expires on its own.
func (w cartWriter) invalidate(ctx context.Context, userID string) {
	if err := w.cache.Delete(ctx, userID); err != nil {
		w.logger.WarnContext(ctx, "failed to invalidate cart cache", "userId", userID, "error", err)
	}
}
