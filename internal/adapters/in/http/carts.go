package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/carts/:userId.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCart(resp))
}

// GetOrCreateCart handles POST /api/v1/carts/:userId.
func (s *Server) GetOrCreateCart(c echo.Context) error {
	cmd, err := commands.NewGetOrCreateCartCommand(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	aggregate, err := s.h.GetOrCreateCart.Handle(c.Request().Context(), cmd)
	return s.writeCart(c, aggregate, err)
}

// AddToCart handles POST /api/v1/carts/:userId/items.
func (s *Server) AddToCart(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, err)
	}

	item, err := commands.NewItemInput(req.ProductID, req.ProductName, req.SKU, req.Quantity, req.UnitPrice)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddToCartCommand(c.Param("userId"), item)
	if err != nil {
		return s.fail(c, err)
	}

	aggregate, err := s.h.AddToCart.Handle(c.Request().Context(), cmd)
	return s.writeCart(c, aggregate, err)
}

// UpdateCartItemQuantity handles PUT /api/v1/carts/:userId/items/:productId.
func (s *Server) UpdateCartItemQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(c.Param("userId"), c.Param("productId"), req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	aggregate, err := s.h.UpdateCartItemQuantity.Handle(c.Request().Context(), cmd)
	return s.writeCart(c, aggregate, err)
}

// RemoveFromCart handles DELETE /api/v1/carts/:userId/items/:productId.
func (s *Server) RemoveFromCart(c echo.Context) error {
	cmd, err := commands.NewRemoveFromCartCommand(c.Param("userId"), c.Param("productId"))
	if err != nil {
		return s.fail(c, err)
	}

	aggregate, err := s.h.RemoveFromCart.Handle(c.Request().Context(), cmd)
	return s.writeCart(c, aggregate, err)
}

// ClearCart handles DELETE /api/v1/carts/:userId/items.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	aggregate, err := s.h.ClearCart.Handle(c.Request().Context(), cmd)
	return s.writeCart(c, aggregate, err)
}

// DeleteCart handles DELETE /api/v1/carts/:userId.
func (s *Server) DeleteCart(c echo.Context) error {
	cmd, err := commands.NewDeleteCartCommand(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteCart.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCartItemCount handles GET /api/v1/carts/:userId/count.
func (s *Server) GetCartItemCount(c echo.Context) error {
	query, err := queries.NewGetCartQuery(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	count, err := s.h.GetCart.HandleItemCount(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Count{Count: int64(count)})
}

// GetCartTotal handles GET /api/v1/carts/:userId/total.
func (s *Server) GetCartTotal(c echo.Context) error {
	query, err := queries.NewGetCartQuery(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}

	total, err := s.h.GetCart.HandleTotal(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Total{Total: total})
}

func (s *Server) writeCart(c echo.Context, aggregate *cart.Cart, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCart(queries.NewCartResponse(aggregate)))
}
