package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the cart of one user.
// The same query drives the item count and total lookups.
//
// Example:
//
//	query, err := NewGetCartQuery("user-42")
//	if err != nil {
//	    return err
//	}
//	cart, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the user never touched a cart
//	}
type GetCartQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates the query. userID must not be blank.
func NewGetCartQuery(userID string) (GetCartQuery, error) {
	if strings.TrimSpace(userID) == "" {
		return GetCartQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return GetCartQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner.
func (q GetCartQuery) UserID() string {
	return q.userID
}
