package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewConfirmOrderCommand(id)
	})
}

// ProcessOrder handles POST /api/v1/orders/:id/process.
func (s *Server) ProcessOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewProcessOrderCommand(id)
	})
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewShipOrderCommand(id)
	})
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewDeliverOrderCommand(id)
	})
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewRefundOrderCommand(id)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel with an optional {"reason"} body.
func (s *Server) CancelOrder(c echo.Context) error {
	reason, err := bindReason(c)
	if err != nil {
		return s.fail(c, err)
	}
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewCancelOrderCommand(id, reason)
	})
}

// HoldOrder handles POST /api/v1/orders/:id/hold with an optional {"reason"} body.
func (s *Server) HoldOrder(c echo.Context) error {
	reason, err := bindReason(c)
	if err != nil {
		return s.fail(c, err)
	}
	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewHoldOrderCommand(id, reason)
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, err)
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transition(c, func(id kernel.UUID) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewUpdateOrderStatusCommand(id, status, req.Reason)
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id/status.
func (s *Server) GetOrderStatus(c echo.Context) error {
	query, err := s.orderQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	status, err := s.h.GetOrder.HandleStatus(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Status{OrderID: query.OrderID().String(), Status: status.String()})
}

// GetAvailableTransitions handles GET /api/v1/orders/:id/status/transitions.
func (s *Server) GetAvailableTransitions(c echo.Context) error {
	query, err := s.orderQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	// One read, so current and available always describe the same status.
	current, err := s.h.GetOrder.HandleStatus(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Transitions{
		OrderID:   query.OrderID().String(),
		Current:   current.String(),
		Available: toStatusNames(current.AvailableTransitions()),
	})
}

// CanTransition handles GET /api/v1/orders/:id/status/transitions/:target.
// An unknown order answers allowed=false rather than 404.
func (s *Server) CanTransition(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	target, err := order.ParseStatus(c.Param("target"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewCanTransitionQuery(orderID, target)
	if err != nil {
		return s.fail(c, err)
	}

	allowed, err := s.h.CanTransition.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, CanTransition{OrderID: orderID.String(), Target: target.String(), Allowed: allowed})
}

// GetStatusHistory handles GET /api/v1/orders/:id/status/history.
func (s *Server) GetStatusHistory(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	entries, err := s.h.GetStatusHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	history := make([]StatusHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, StatusHistoryEntry{
			From:      entry.From.String(),
			To:        entry.To.String(),
			Reason:    entry.Reason,
			Timestamp: entry.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, history)
}

// transition parses the order id, builds the command and runs it through the
// status handler.
func (s *Server) transition(
	c echo.Context,
	build func(kernel.UUID) (commands.UpdateOrderStatusCommand, error),
) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := build(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// bindReason reads the optional {"reason"} body of cancel and hold.
func bindReason(c echo.Context) (string, error) {
	var req ReasonRequest
	if c.Request().ContentLength == 0 {
		return "", nil
	}
	if err := c.Bind(&req); err != nil {
		return "", err
	}
	return req.Reason, nil
}
