package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/keylock"
)

// UpdateOrderStatusCommandHandler drives orders through their lifecycle.
//
// Process:
//  1. Lock the order key so concurrent transitions of one order serialize
//  2. Load the order and apply the transition (rejected ones change nothing)
//  3. Save the order and append the ledger entry in the same unit of work
//  4. Commit, then publish OrderStatusChanged
//
// Publishing is best effort: a failure is logged and the committed transition stands.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.KeyLocker
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates the handler.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.KeyLocker,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
		logger:     logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

// Handle applies the transition and returns the updated order.
//
// Returns:
//   - ObjectNotFoundError if the order does not exist
//   - InvalidTransitionError if the lifecycle forbids the change
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locker.Lock(keylock.OrderKey(cmd.OrderID().String()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	entry, err := aggregate.ChangeStatus(cmd.Status(), cmd.Reason())
	if err != nil {
		return nil, err
	}
	if cmd.ReasonAsNotes() {
		aggregate.SetNotes(cmd.Reason())
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, aggregate.ID(), entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publish(ctx, aggregate, entry)
	return aggregate, nil
}

func (h *UpdateOrderStatusCommandHandler) publish(
	ctx context.Context,
	aggregate *order.Order,
	entry order.StatusHistoryEntry,
) {
	event := ports.OrderStatusChanged{
		OrderID:    aggregate.ID(),
		UserID:     aggregate.UserID(),
		From:       entry.From(),
		To:         entry.To(),
		Reason:     entry.Reason(),
		OccurredAt: entry.Timestamp(),
	}

	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order status change",
			"orderId", aggregate.ID().String(),
			"to", entry.To().String(),
			"error", err,
		)
		return
	}

	h.logger.InfoContext(ctx, "order status changed",
		"orderId", aggregate.ID().String(),
		"from", entry.From().String(),
		"to", entry.To().String(),
	)
}
