// Package queries contains read-only operations.
// Handlers read committed state through repositories and return flat response
// structs; they never modify aggregates.
package queries

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// LineItemResponse is the read view of one cart or order line.
type LineItemResponse struct {
	ID          kernel.UUID
	ProductID   string
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// CartResponse is the read view of a cart.
type CartResponse struct {
	ID          kernel.UUID
	UserID      string
	Items       []LineItemResponse
	ItemCount   int
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderResponse is the read view of an order.
type OrderResponse struct {
	ID                kernel.UUID
	UserID            string
	Items             []LineItemResponse
	Status            order.Status
	Subtotal          float64
	TaxAmount         float64
	ShippingAmount    float64
	TotalAmount       float64
	ShippingAddressID string
	BillingAddressID  string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StatusHistoryResponse is one ledger entry.
type StatusHistoryResponse struct {
	From      order.Status
	To        order.Status
	Reason    string
	Timestamp time.Time
}

// NewCartResponse maps a cart aggregate to its read view.
func NewCartResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		ID:          c.ID(),
		UserID:      c.UserID(),
		Items:       newLineItemResponses(c.Items()),
		ItemCount:   c.ItemCount(),
		TotalAmount: c.TotalAmount(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// NewOrderResponse maps an order aggregate to its read view.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID(),
		UserID:            o.UserID(),
		Items:             newLineItemResponses(o.Items()),
		Status:            o.Status(),
		Subtotal:          o.Subtotal(),
		TaxAmount:         o.TaxAmount(),
		ShippingAmount:    o.ShippingAmount(),
		TotalAmount:       o.TotalAmount(),
		ShippingAddressID: o.ShippingAddressID(),
		BillingAddressID:  o.BillingAddressID(),
		Notes:             o.Notes(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

func newLineItemResponses(items []kernel.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, LineItemResponse{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}
	return responses
}
