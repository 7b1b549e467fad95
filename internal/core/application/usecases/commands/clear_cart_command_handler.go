package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// ClearCartCommandHandler empties carts.
type ClearCartCommandHandler struct {
	writer cartWriter
}

// NewClearCartCommandHandler creates the handler.
func NewClearCartCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache, logger.With("component", "ClearCartCommandHandler")),
	}
}

// Handle clears the cart and returns it. A user without a cart gets an empty one.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.writer.mutate(ctx, cmd.UserID(), func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}
