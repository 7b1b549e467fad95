// Package postgres persists carts, orders and the status ledger with GORM.
//
// One GormUnitOfWork wraps one database transaction. Repositories handed out by
// a unit of work run inside that transaction once Begin has been called, and
// against the plain connection otherwise (the read path of the query handlers).
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Save(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.StatusHistoryRepository().Append(ctx, o.ID(), entry); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Units of work are not shared between goroutines.
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/historyrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out a fresh GormUnitOfWork per operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork on top of a gorm transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	return uow.finish((*gorm.DB).Commit)
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which
// is the normal outcome of the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	return uow.finish((*gorm.DB).Rollback)
}

func (uow *GormUnitOfWork) finish(end func(*gorm.DB) *gorm.DB) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	tx := uow.tx
	uow.tx = nil
	return end(tx).Error
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return historyrepo.NewGormStatusHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
