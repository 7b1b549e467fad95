package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// AddToCartCommandHandler adds items to carts, creating the cart on first use.
type AddToCartCommandHandler struct {
	writer cartWriter
}

// NewAddToCartCommandHandler creates the handler.
func NewAddToCartCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache, logger.With("component", "AddToCartCommandHandler")),
	}
}

// Handle adds the item and returns the updated cart snapshot.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.writer.mutate(ctx, cmd.UserID(), func(c *cart.Cart) error {
		item, err := cmd.Item().LineItem()
		if err != nil {
			return err
		}
		return c.AddItem(item)
	})
}
