package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"
)

// DeleteCartCommandHandler deletes carts by owner.
type DeleteCartCommandHandler struct {
	writer cartWriter
}

// NewDeleteCartCommandHandler creates the handler.
func NewDeleteCartCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) DeleteCartCommandHandler {
	return DeleteCartCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache, logger.With("component", "DeleteCartCommandHandler")),
	}
}

// Handle deletes the user's cart.
// Returns an ObjectNotFoundError when the user has no cart.
func (h *DeleteCartCommandHandler) Handle(ctx context.Context, cmd DeleteCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	w := h.writer
	unlock := w.locker.Lock(keylock.CartKey(cmd.UserID()))
	defer unlock()

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().DeleteByUserID(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	w.invalidate(ctx, cmd.UserID())
	return nil
}
