package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderStatusChanged describes one accepted and committed status transition.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	UserID     string
	From       order.Status
	To         order.Status
	Reason     string
	OccurredAt time.Time
}

// OrderEventPublisher delivers order events to external consumers.
// Publishing happens after commit; a failure never undoes the transition.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
