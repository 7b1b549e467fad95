package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/keylock"
)

// ExpireCartsCommandHandler removes abandoned carts.
//
// Candidates are listed without a lock; each one is then re-read under its cart
// key lock and deleted only if it is still stale, so a cart touched between the
// scan and the delete survives.
type ExpireCartsCommandHandler struct {
	writer cartWriter
}

// NewExpireCartsCommandHandler creates the handler.
func NewExpireCartsCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) ExpireCartsCommandHandler {
	return ExpireCartsCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache, logger.With("component", "ExpireCartsCommandHandler")),
	}
}

// Handle deletes the stale carts and returns how many were removed.
// A failure on one cart is logged and the scan continues; the joined errors are
// returned at the end.
func (h *ExpireCartsCommandHandler) Handle(ctx context.Context, cmd ExpireCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	stale, err := h.writer.uowFactory.Create().CartRepository().GetUpdatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	var (
		expired int
		failed  error
	)
	for _, c := range stale {
		removed, expireErr := h.expire(ctx, c.UserID(), cmd.Cutoff())
		if expireErr != nil {
			h.writer.logger.WarnContext(ctx, "failed to expire cart", "userId", c.UserID(), "error", expireErr)
			failed = errors.Join(failed, expireErr)
			continue
		}
		if removed {
			expired++
		}
	}

	return expired, failed
}

func (h *ExpireCartsCommandHandler) expire(ctx context.Context, userID string, cutoff time.Time) (bool, error) {
	w := h.writer
	unlock := w.locker.Lock(keylock.CartKey(userID))
	defer unlock()

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	current, err := cartRepo.GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !current.UpdatedAt().Before(cutoff) {
		return false, nil
	}

	if err = cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	w.invalidate(ctx, userID)
	return true, nil
}
