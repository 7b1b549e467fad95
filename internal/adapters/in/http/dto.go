package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest describes one line to add to a cart or an order.
type ItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// UpdateQuantityRequest is the body of PUT /carts/:userId/items/:productId.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	UserID            string        `json:"userId"`
	Items             []ItemRequest `json:"items"`
	ShippingAddressID string        `json:"shippingAddressId"`
	BillingAddressID  string        `json:"billingAddressId"`
	Notes             string        `json:"notes"`
	TaxRate           float64       `json:"taxRate"`
	ShippingAmount    float64       `json:"shippingAmount"`
}

// UpdateStatusRequest is the body of PUT /orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ReasonRequest is the optional body of the cancel and hold actions.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

type LineItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

type Cart struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Items       []LineItem `json:"items"`
	ItemCount   int        `json:"itemCount"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Order struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Items             []LineItem `json:"items"`
	Status            string     `json:"status"`
	Subtotal          float64    `json:"subtotal"`
	TaxAmount         float64    `json:"taxAmount"`
	ShippingAmount    float64    `json:"shippingAmount"`
	TotalAmount       float64    `json:"totalAmount"`
	ShippingAddressID string     `json:"shippingAddressId"`
	BillingAddressID  string     `json:"billingAddressId,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type StatusHistoryEntry struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Count struct {
	Count int64 `json:"count"`
}

type Total struct {
	Total float64 `json:"total"`
}

type Status struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type Transitions struct {
	OrderID   string   `json:"orderId"`
	Current   string   `json:"current"`
	Available []string `json:"available"`
}

type CanTransition struct {
	OrderID string `json:"orderId"`
	Target  string `json:"target"`
	Allowed bool   `json:"allowed"`
}

func toLineItems(items []queries.LineItemResponse) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, LineItem{
			ID:          item.ID.String(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return out
}

func toCart(c queries.CartResponse) Cart {
	return Cart{
		ID:          c.ID.String(),
		UserID:      c.UserID,
		Items:       toLineItems(c.Items),
		ItemCount:   c.ItemCount,
		TotalAmount: c.TotalAmount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:                o.ID.String(),
		UserID:            o.UserID,
		Items:             toLineItems(o.Items),
		Status:            o.Status.String(),
		Subtotal:          o.Subtotal,
		TaxAmount:         o.TaxAmount,
		ShippingAmount:    o.ShippingAmount,
		TotalAmount:       o.TotalAmount,
		ShippingAddressID: o.ShippingAddressID,
		BillingAddressID:  o.BillingAddressID,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toOrders(orders []queries.OrderResponse) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toStatusNames(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
