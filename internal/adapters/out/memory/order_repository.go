package memory

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a Store.
type OrderRepository struct {
	store *Store
	tx    *changeSet
}

// NewOrderRepository creates a write-through repository over store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Save stores a copy of aggregate.
func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Clone()
	if r.tx != nil {
		r.tx.orders[snapshot.ID()] = snapshot
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders[snapshot.ID()] = snapshot
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o.Clone(), nil
}

// GetByUserID returns the orders placed by userID.
func (r *OrderRepository) GetByUserID(_ context.Context, userID string) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.UserID() == userID }), nil
}

// GetByStatus returns the orders currently in status.
func (r *OrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.Status() == status }), nil
}

// GetAll returns a page of orders ordered by creation time.
func (r *OrderRepository) GetAll(_ context.Context, skip, limit int) ([]*order.Order, error) {
	return cloneOrders(page(r.store.orderView(r.tx), skip, limit)), nil
}

// Delete removes the order with id together with its status history.
func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	if r.tx != nil {
		r.tx.orders[id] = nil
		delete(r.tx.history, id)
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deleteOrder(id)
	return nil
}

// Count returns the number of orders visible to this repository.
func (r *OrderRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.orderView(r.tx))), nil
}

func (r *OrderRepository) lookup(id kernel.UUID) (*order.Order, bool) {
	if r.tx != nil {
		if staged, ok := r.tx.orders[id]; ok {
			return staged, staged != nil
		}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.orders[id]
	return o, ok
}

func (r *OrderRepository) filter(match func(*order.Order) bool) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range r.store.orderView(r.tx) {
		if match(o) {
			matched = append(matched, o)
		}
	}
	return cloneOrders(matched)
}

func cloneOrders(orders []*order.Order) []*order.Order {
	clones := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		clones = append(clones, o.Clone())
	}
	return clones
}
