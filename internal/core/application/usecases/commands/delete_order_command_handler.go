package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"
)

// DeleteOrderCommandHandler deletes orders that never progressed or were cancelled.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.KeyLocker
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates the handler.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.KeyLocker,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     logger.With("component", "DeleteOrderCommandHandler"),
	}
}

// Handle deletes the order.
//
// Returns:
//   - ObjectNotFoundError if the order does not exist
//   - InvalidStateError unless the order is Pending or Cancelled
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(keylock.OrderKey(cmd.OrderID().String()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ValidateDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order deleted", "orderId", aggregate.ID().String())
	return nil
}
