package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, err)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := commands.NewItemInput(it.ProductID, it.ProductName, it.SKU, it.Quantity, it.UnitPrice)
		if err != nil {
			return s.fail(c, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserID, items, req.ShippingAddressID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd = cmd.
		WithBillingAddressID(req.BillingAddressID).
		WithNotes(req.Notes).
		WithTaxRate(req.TaxRate).
		WithShippingAmount(req.ShippingAmount)

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// ListOrders handles GET /api/v1/orders?skip=&limit=.
func (s *Server) ListOrders(c echo.Context) error {
	skip, limit := 0, queries.DefaultPageSize
	if err := echo.QueryParamsBinder(c).
		Int("skip", &skip).
		Int("limit", &limit).
		BindError(); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListOrdersQuery(skip, limit)
	if err != nil {
		return s.fail(c, err)
	}
	return s.listOrders(c, query)
}

// ListUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) ListUserOrders(c echo.Context) error {
	query, err := queries.NewListOrdersByUserQuery(c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}
	return s.listOrders(c, query)
}

// ListOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) ListOrdersByStatus(c echo.Context) error {
	status, err := order.ParseStatus(c.Param("status"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(status)
	if err != nil {
		return s.fail(c, err)
	}
	return s.listOrders(c, query)
}

// CountOrders handles GET /api/v1/orders/count.
func (s *Server) CountOrders(c echo.Context) error {
	count, err := s.h.ListOrders.Count(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Count{Count: count})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := s.orderQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(resp))
}

// GetOrderTotal handles GET /api/v1/orders/:id/total.
func (s *Server) GetOrderTotal(c echo.Context) error {
	query, err := s.orderQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	total, err := s.h.GetOrder.HandleTotal(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Total{Total: total})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listOrders(c echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(orders))
}

func (s *Server) orderQuery(c echo.Context) (queries.GetOrderQuery, error) {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return queries.GetOrderQuery{}, err
	}
	return queries.NewGetOrderQuery(orderID)
}
