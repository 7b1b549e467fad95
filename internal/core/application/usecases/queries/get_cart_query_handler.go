package queries

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetCartQueryHandler serves cart reads from the cache, falling back to the repository.
type GetCartQueryHandler struct {
	reader cartReader
}

// NewGetCartQueryHandler creates the handler.
func NewGetCartQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	locker ports.KeyLocker,
	cache ports.CartCache,
	logger *slog.Logger,
) GetCartQueryHandler {
	return GetCartQueryHandler{reader: cartReader{
		uowFactory: uowFactory,
		locker:     locker,
		cache:      cache,
		logger:     logger.With("component", "GetCartQueryHandler"),
	}}
}

// Handle returns the user's cart or an ObjectNotFoundError.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	c, err := h.reader.load(ctx, query.UserID())
	if err != nil {
		return CartResponse{}, err
	}
	return NewCartResponse(c), nil
}

// HandleItemCount returns the summed quantity of the user's cart, 0 when there is none.
func (h GetCartQueryHandler) HandleItemCount(ctx context.Context, query GetCartQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	c, err := h.reader.load(ctx, query.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.ItemCount(), nil
}

// HandleTotal returns the cart total, 0 when the user has no cart.
func (h GetCartQueryHandler) HandleTotal(ctx context.Context, query GetCartQuery) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	c, err := h.reader.load(ctx, query.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.TotalAmount(), nil
}
