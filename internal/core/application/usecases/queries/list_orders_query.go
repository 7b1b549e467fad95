package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// DefaultPageSize is used by transports when the caller sends no limit.
	DefaultPageSize = 20
	// MaxPageSize caps a single page.
	MaxPageSize = 1000
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery, NewListOrdersByUserQuery " +
			"or NewListOrdersByStatusQuery constructor",
	)
)

// ListOrdersQuery selects orders in one of three ways: a page of all orders, every
// order of a user, or every order in a status.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(order.Shipped)
//	if err != nil {
//	    return err
//	}
//	shipped, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	skip   int
	limit  int
	userID string
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery pages through all orders, oldest first.
func NewListOrdersQuery(skip, limit int) (ListOrdersQuery, error) {
	var err error
	if skip < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded"))
	}
	if limit < 1 || limit > MaxPageSize {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize))
	}
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{skip: skip, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersByUserQuery selects every order placed by userID.
func NewListOrdersByUserQuery(userID string) (ListOrdersQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return ListOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersByStatusQuery selects every order currently in status.
func NewListOrdersByStatusQuery(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Skip returns the number of orders skipped by a paged query.
func (q ListOrdersQuery) Skip() int { return q.skip }

// Limit returns the page size of a paged query.
func (q ListOrdersQuery) Limit() int { return q.limit }

// UserID returns the user filter, empty when not filtering by user.
func (q ListOrdersQuery) UserID() string { return q.userID }

// Status returns the status filter, Unknown when not filtering by status.
func (q ListOrdersQuery) Status() order.Status { return q.status }
