// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// Money travels through shopspring/decimal so the database never sees binary floating
// point. Unit prices are unscaled numeric since line totals are derived from them again
// on load; derived amounts are numeric(12,2).
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
// UserID is unique: a user owns at most one cart.
type CartDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"not null;index;autoUpdateTime:false"`
	Items       []CartItemDTO   `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. Position keeps the insertion order.
type CartItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	ProductID   string          `gorm:"type:varchar(255);not null"`
	ProductName string          `gorm:"type:varchar(255)"`
	SKU         string          `gorm:"column:sku;type:varchar(255)"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	cartID := aggregate.ID().Bytes()
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:          item.ID().Bytes(),
			CartID:      cartID,
			Position:    position,
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   decimal.NewFromFloat(item.UnitPrice()),
			LineTotal:   decimal.NewFromFloat(item.LineTotal()),
		})
	}

	return CartDTO{
		ID:          cartID,
		UserID:      aggregate.UserID(),
		TotalAmount: decimal.NewFromFloat(aggregate.TotalAmount()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       items,
	}
}

// toDomain reconstructs the aggregate with RestoreCart; totals are derived again.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]kernel.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := kernel.RestoreLineItem(itemID, itemDTO.ProductID, itemDTO.ProductName, itemDTO.SKU,
			itemDTO.Quantity, itemDTO.UnitPrice.InexactFloat64())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, dto.UserID, items, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
