package postgres

import (
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/historyrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by this adapter, children before parents.
var Tables = []string{"cart_items", "carts", "order_items", "order_status_history", "orders"}

// Migrate creates or updates the schema for carts, orders and the status ledger.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.StatusHistoryDTO{},
	)
}
