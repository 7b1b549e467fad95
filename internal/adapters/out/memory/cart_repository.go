package memory

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// CartRepository implements ports.CartRepository on top of a Store.
// With a change set it stages writes; without one it writes through.
type CartRepository struct {
	store *Store
	tx    *changeSet
}

// NewCartRepository creates a write-through repository over store.
func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

// Save stores a copy of aggregate.
func (r *CartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Clone()
	if r.tx != nil {
		r.tx.carts[snapshot.ID()] = snapshot
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.putCart(snapshot)
	return nil
}

// Get retrieves a cart by ID.
func (r *CartRepository) Get(_ context.Context, id kernel.UUID) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", id.String())
	}
	return c.Clone(), nil
}

// GetByUserID retrieves the cart owned by userID.
func (r *CartRepository) GetByUserID(_ context.Context, userID string) (*cart.Cart, error) {
	c, ok := r.lookupByUser(userID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart for user", userID)
	}
	return c.Clone(), nil
}

// GetAll returns a page of carts ordered by creation time.
func (r *CartRepository) GetAll(_ context.Context, skip, limit int) ([]*cart.Cart, error) {
	return cloneCarts(page(r.store.cartView(r.tx), skip, limit)), nil
}

// GetUpdatedBefore returns the carts last mutated before t.
func (r *CartRepository) GetUpdatedBefore(_ context.Context, t time.Time) ([]*cart.Cart, error) {
	stale := make([]*cart.Cart, 0)
	for _, c := range r.store.cartView(r.tx) {
		if c.UpdatedAt().Before(t) {
			stale = append(stale, c)
		}
	}
	return cloneCarts(stale), nil
}

// Delete removes the cart with id.
func (r *CartRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("cart", id.String())
	}
	r.remove(id)
	return nil
}

// DeleteByUserID removes the cart owned by userID.
func (r *CartRepository) DeleteByUserID(_ context.Context, userID string) error {
	c, ok := r.lookupByUser(userID)
	if !ok {
		return errs.NewObjectNotFoundError("cart for user", userID)
	}
	r.remove(c.ID())
	return nil
}

// Count returns the number of carts visible to this repository.
func (r *CartRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.cartView(r.tx))), nil
}

func (r *CartRepository) remove(id kernel.UUID) {
	if r.tx != nil {
		r.tx.carts[id] = nil
		return
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deleteCart(id)
}

func (r *CartRepository) lookup(id kernel.UUID) (*cart.Cart, bool) {
	if r.tx != nil {
		if staged, ok := r.tx.carts[id]; ok {
			return staged, staged != nil
		}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.carts[id]
	return c, ok
}

func (r *CartRepository) lookupByUser(userID string) (*cart.Cart, bool) {
	if r.tx != nil {
		for _, staged := range r.tx.carts {
			if staged != nil && staged.UserID() == userID {
				return staged, true
			}
		}
	}

	r.store.mu.RLock()
	id, ok := r.store.cartsByUser[userID]
	r.store.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return r.lookup(id)
}

func cloneCarts(carts []*cart.Cart) []*cart.Cart {
	clones := make([]*cart.Cart, 0, len(carts))
	for _, c := range carts {
		clones = append(clones, c.Clone())
	}
	return clones
}
