// Package memory provides the in-process storage adapter: a shared Store of carts,
// orders and status history, and a Unit of Work that stages writes and applies them
// to the Store atomically on Commit.
//
// Aggregates are cloned on the way in and on the way out, so callers never hold a
// pointer into shared state.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// Store holds committed state. All access goes through the repositories.
type Store struct {
	mu          sync.RWMutex
	carts       map[kernel.UUID]*cart.Cart
	cartsByUser map[string]kernel.UUID
	orders      map[kernel.UUID]*order.Order
	history     map[kernel.UUID][]order.StatusHistoryEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		carts:       make(map[kernel.UUID]*cart.Cart),
		cartsByUser: make(map[string]kernel.UUID),
		orders:      make(map[kernel.UUID]*order.Order),
		history:     make(map[kernel.UUID][]order.StatusHistoryEntry),
	}
}

// changeSet is the staged state of one transaction. A nil aggregate marks a deletion.
type changeSet struct {
	carts   map[kernel.UUID]*cart.Cart
	orders  map[kernel.UUID]*order.Order
	history map[kernel.UUID][]order.StatusHistoryEntry
}

func newChangeSet() *changeSet {
	return &changeSet{
		carts:   make(map[kernel.UUID]*cart.Cart),
		orders:  make(map[kernel.UUID]*order.Order),
		history: make(map[kernel.UUID][]order.StatusHistoryEntry),
	}
}

// apply writes every staged change under a single write lock.
func (s *Store) apply(cs *changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range cs.carts {
		if c == nil {
			s.deleteCart(id)
			continue
		}
		s.putCart(c)
	}
	for id, o := range cs.orders {
		if o == nil {
			s.deleteOrder(id)
			continue
		}
		s.orders[id] = o
	}
	for id, entries := range cs.history {
		s.history[id] = append(s.history[id], entries...)
	}
}

// putCart requires the write lock.
func (s *Store) putCart(c *cart.Cart) {
	if previous, ok := s.cartsByUser[c.UserID()]; ok && !previous.IsEqual(c.ID()) {
		delete(s.carts, previous)
	}
	s.carts[c.ID()] = c
	s.cartsByUser[c.UserID()] = c.ID()
}

// deleteCart requires the write lock.
func (s *Store) deleteCart(id kernel.UUID) {
	c, ok := s.carts[id]
	if !ok {
		return
	}
	delete(s.carts, id)
	if indexed, ok := s.cartsByUser[c.UserID()]; ok && indexed.IsEqual(id) {
		delete(s.cartsByUser, c.UserID())
	}
}

// deleteOrder requires the write lock. The order's ledger goes with it.
func (s *Store) deleteOrder(id kernel.UUID) {
	delete(s.orders, id)
	delete(s.history, id)
}

// cartView returns committed carts overlaid with staged changes, ordered by creation
// time and then identifier.
func (s *Store) cartView(cs *changeSet) []*cart.Cart {
	s.mu.RLock()
	merged := make(map[kernel.UUID]*cart.Cart, len(s.carts))
	for id, c := range s.carts {
		merged[id] = c
	}
	s.mu.RUnlock()

	if cs != nil {
		for id, c := range cs.carts {
			if c == nil {
				delete(merged, id)
				continue
			}
			merged[id] = c
		}
	}

	view := make([]*cart.Cart, 0, len(merged))
	for _, c := range merged {
		view = append(view, c)
	}
	slices.SortFunc(view, func(a, b *cart.Cart) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return view
}

// orderView is cartView for orders.
func (s *Store) orderView(cs *changeSet) []*order.Order {
	s.mu.RLock()
	merged := make(map[kernel.UUID]*order.Order, len(s.orders))
	for id, o := range s.orders {
		merged[id] = o
	}
	s.mu.RUnlock()

	if cs != nil {
		for id, o := range cs.orders {
			if o == nil {
				delete(merged, id)
				continue
			}
			merged[id] = o
		}
	}

	view := make([]*order.Order, 0, len(merged))
	for _, o := range merged {
		view = append(view, o)
	}
	slices.SortFunc(view, func(a, b *order.Order) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return view
}

func page[T any](items []T, skip, limit int) []T {
	skip = max(skip, 0)
	if skip >= len(items) || limit <= 0 {
		return make([]T, 0)
	}
	end := min(skip+limit, len(items))
	return items[skip:end]
}
