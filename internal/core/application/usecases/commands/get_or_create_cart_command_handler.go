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

// GetOrCreateCartCommandHandler implements get-or-create for a user's cart.
//
// Example:
//
//	cmd, _ := NewGetOrCreateCartCommand("user-42")
//	c, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.ID())
type GetOrCreateCartCommandHandler struct {
	uowFactory CartUoWFactory
	locker     ports.KeyLocker
	logger     *slog.Logger
}

// NewGetOrCreateCartCommandHandler creates the handler.
func NewGetOrCreateCartCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	logger *slog.Logger,
) GetOrCreateCartCommandHandler {
	return GetOrCreateCartCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     logger.With("component", "GetOrCreateCartCommandHandler"),
	}
}

// Handle returns the existing cart untouched, or creates and persists a new one.
func (h *GetOrCreateCartCommandHandler) Handle(ctx context.Context, cmd GetOrCreateCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locker.Lock(keylock.CartKey(cmd.UserID()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	existing, err := cartRepo.GetByUserID(ctx, cmd.UserID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := cart.NewCart(cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = cartRepo.Save(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "cart created", "cartId", created.ID().String(), "userId", cmd.UserID())
	return created, nil
}
