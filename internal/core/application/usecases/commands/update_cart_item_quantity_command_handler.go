package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// UpdateCartItemQuantityCommandHandler changes line quantities.
type UpdateCartItemQuantityCommandHandler struct {
	writer cartWriter
}

// NewUpdateCartItemQuantityCommandHandler creates the handler.
func NewUpdateCartItemQuantityCommandHandler(
	uowFactory CartUoWFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		writer: newCartWriter(uowFactory, locker, cache,
			logger.With("component", "UpdateCartItemQuantityCommandHandler")),
	}
}

// Handle updates the quantity and returns the cart.
// Returns an ObjectNotFoundError when the product is not in the cart.
func (h *UpdateCartItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCartItemQuantityCommand,
) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.writer.mutate(ctx, cmd.UserID(), func(c *cart.Cart) error {
		if !c.UpdateItemQuantity(cmd.ProductID(), cmd.Quantity()) {
			return errs.NewObjectNotFoundError("product in cart", cmd.ProductID())
		}
		return nil
	})
}
