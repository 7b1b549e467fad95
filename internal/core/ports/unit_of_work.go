package ports

import (
	"context"
)

// UnitOfWorkFactory returns a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one transaction over carts, orders and the status ledger.
// Writes through its repositories become visible together on Commit, or not at all.
// Without Begin, repositories read committed state directly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open; callers defer it and ignore the result.
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	OrderRepository() OrderRepository
	StatusHistoryRepository() StatusHistoryRepository
}
