package memory

import (
	"context"
	"errors"

	"storefront/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work that share one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages repository writes between Begin and Commit.
// Until Commit nothing is visible to other units of work; Commit applies every staged
// write under one Store lock. Outside Begin the repositories write through.
//
// A UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store *Store
	tx    *changeSet
}

// Begin starts staging. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.tx = newChangeSet()
	return nil
}

// Commit applies the staged writes and ends the transaction.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.store.apply(uow.tx)
	uow.tx = nil
	return nil
}

// Rollback discards the staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.tx = nil
	return nil
}

// CartRepository returns a cart repository bound to the current transaction.
func (uow *UnitOfWork) CartRepository() ports.CartRepository {
	return &CartRepository{store: uow.store, tx: uow.tx}
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, tx: uow.tx}
}

// StatusHistoryRepository returns a ledger bound to the current transaction.
func (uow *UnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return &StatusHistoryRepository{store: uow.store, tx: uow.tx}
}
