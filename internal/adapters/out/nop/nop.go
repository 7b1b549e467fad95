// Package nop provides do-nothing adapters used when an optional backend is not configured.
package nop

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// CartCache never stores anything; every Get is a miss.
type CartCache struct{}

// Get always returns ports.ErrCacheMiss.
func (CartCache) Get(context.Context, string) (*cart.Cart, error) { return nil, ports.ErrCacheMiss }

// Set discards the snapshot.
func (CartCache) Set(context.Context, string, *cart.Cart) error { return nil }

// Delete does nothing.
func (CartCache) Delete(context.Context, string) error { return nil }

// OrderEventPublisher drops every event.
type OrderEventPublisher struct{}

// PublishStatusChanged discards event.
func (OrderEventPublisher) PublishStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}

var (
	_ ports.CartCache           = CartCache{}
	_ ports.OrderEventPublisher = OrderEventPublisher{}
)
