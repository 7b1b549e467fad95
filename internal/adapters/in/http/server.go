// Package http exposes the storefront use cases as a JSON REST API on echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	GetOrCreateCart        commands.GetOrCreateCartCommandHandler
	AddToCart              commands.AddToCartCommandHandler
	RemoveFromCart         commands.RemoveFromCartCommandHandler
	UpdateCartItemQuantity commands.UpdateCartItemQuantityCommandHandler
	ClearCart              commands.ClearCartCommandHandler
	DeleteCart             commands.DeleteCartCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrderStatus      commands.UpdateOrderStatusCommandHandler
	DeleteOrder            commands.DeleteOrderCommandHandler

	GetCart          queries.GetCartQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	CanTransition    queries.CanTransitionQueryHandler
	GetStatusHistory queries.GetStatusHistoryQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "HTTPServer"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	carts := api.Group("/carts/:userId")
	carts.GET("", s.GetCart)
	carts.POST("", s.GetOrCreateCart)
	carts.DELETE("", s.DeleteCart)
	carts.POST("/items", s.AddToCart)
	carts.DELETE("/items", s.ClearCart)
	carts.PUT("/items/:productId", s.UpdateCartItemQuantity)
	carts.DELETE("/items/:productId", s.RemoveFromCart)
	carts.GET("/count", s.GetCartItemCount)
	carts.GET("/total", s.GetCartTotal)

	api.GET("/users/:userId/orders", s.ListUserOrders)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/count", s.CountOrders)
	orders.GET("/status/:status", s.ListOrdersByStatus)
	orders.GET("/:id", s.GetOrder)
	orders.DELETE("/:id", s.DeleteOrder)
	orders.GET("/:id/total", s.GetOrderTotal)
	orders.POST("/:id/confirm", s.ConfirmOrder)
	orders.POST("/:id/process", s.ProcessOrder)
	orders.POST("/:id/ship", s.ShipOrder)
	orders.POST("/:id/deliver", s.DeliverOrder)
	orders.POST("/:id/refund", s.RefundOrder)
	orders.POST("/:id/cancel", s.CancelOrder)
	orders.POST("/:id/hold", s.HoldOrder)
	orders.GET("/:id/status", s.GetOrderStatus)
	orders.PUT("/:id/status", s.UpdateOrderStatus)
	orders.GET("/:id/status/transitions", s.GetAvailableTransitions)
	orders.GET("/:id/status/transitions/:target", s.CanTransition)
	orders.GET("/:id/status/history", s.GetStatusHistory)
}

// fail writes err with the status code its kind maps to.
func (s *Server) fail(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	var (
		httpErr    *echo.HTTPError
		bindingErr *echo.BindingError
	)
	switch {
	case errs.IsValidation(err):
		code = http.StatusBadRequest
	case errors.As(err, &bindingErr):
		code = http.StatusBadRequest
	case errors.As(err, &httpErr):
		code = httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{Code: code, Message: message})
}
