package memory

import (
	"context"
	"slices"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// StatusHistoryRepository implements ports.StatusHistoryRepository on top of a Store.
type StatusHistoryRepository struct {
	store *Store
	tx    *changeSet
}

// NewStatusHistoryRepository creates a write-through ledger over store.
func NewStatusHistoryRepository(store *Store) *StatusHistoryRepository {
	return &StatusHistoryRepository{store: store}
}

// Append records entry for orderID.
func (r *StatusHistoryRepository) Append(_ context.Context, orderID kernel.UUID, entry order.StatusHistoryEntry) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if r.tx != nil {
		r.tx.history[orderID] = append(r.tx.history[orderID], entry)
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.history[orderID] = append(r.store.history[orderID], entry)
	return nil
}

// Get returns the entries of orderID in append order, committed ones first.
func (r *StatusHistoryRepository) Get(_ context.Context, orderID kernel.UUID) ([]order.StatusHistoryEntry, error) {
	r.store.mu.RLock()
	entries := slices.Clone(r.store.history[orderID])
	r.store.mu.RUnlock()

	if r.tx != nil {
		if staged, ok := r.tx.orders[orderID]; ok && staged == nil {
			return make([]order.StatusHistoryEntry, 0), nil
		}
		entries = append(entries, r.tx.history[orderID]...)
	}
	if entries == nil {
		entries = make([]order.StatusHistoryEntry, 0)
	}
	return entries, nil
}
