package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCanTransitionQueryIsNotConstructed = errors.New(
		"CanTransitionQuery must be created via NewCanTransitionQuery constructor",
	)
)

// CanTransitionQuery asks whether an order may move to target right now.
type CanTransitionQuery struct {
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewCanTransitionQuery creates the query.
func NewCanTransitionQuery(orderID kernel.UUID, target order.Status) (CanTransitionQuery, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return CanTransitionQuery{}, err
	}
	return CanTransitionQuery{orderID: orderID, target: target, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanTransitionQuery) Validate() error {
	return q.guard.Validate(ErrCanTransitionQueryIsNotConstructed)
}

// OrderID returns the order in question.
func (q CanTransitionQuery) OrderID() kernel.UUID { return q.orderID }

// Target returns the requested status.
func (q CanTransitionQuery) Target() order.Status { return q.target }

// CanTransitionQueryHandler answers CanTransitionQuery.
type CanTransitionQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCanTransitionQueryHandler creates the handler.
func NewCanTransitionQueryHandler(uowFactory ports.UnitOfWorkFactory) CanTransitionQueryHandler {
	return CanTransitionQueryHandler{uowFactory: uowFactory}
}

// Handle reports whether the transition is allowed. An unknown order yields false
// rather than an error.
func (h CanTransitionQueryHandler) Handle(ctx context.Context, query CanTransitionQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return order.CanTransition(o.Status(), query.Target()), nil
}
