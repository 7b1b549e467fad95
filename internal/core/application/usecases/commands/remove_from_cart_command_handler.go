package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// RemoveFromCartCommandHandler removes product lines from carts.
type RemoveFromCartCommandHandler struct {
	writer cartWriter
}

// NewRemoveFromCartCommandHandler creates the handler.
func NewRemoveFromCartCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache, logger.With("component", "RemoveFromCartCommandHandler")),
	}
}

// Handle removes the line and returns the updated cart.
// Returns an ObjectNotFoundError and leaves the cart unchanged when the product is
// not in the cart.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.writer.mutate(ctx, cmd.UserID(), func(c *cart.Cart) error {
		if !c.RemoveItem(cmd.ProductID()) {
			return errs.NewObjectNotFoundError("product in cart", cmd.ProductID())
		}
		return nil
	})
}
