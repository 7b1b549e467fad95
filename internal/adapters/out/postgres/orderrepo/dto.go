// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by wire name and indexed together with user for the list queries.
// ShippingAmount and item unit prices are inputs and keep every digit (numeric);
// the derived amounts are numeric(12,2).
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            string          `gorm:"type:varchar(255);not null;index"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingAmount    decimal.Decimal `gorm:"type:numeric;not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingAddressID string          `gorm:"type:varchar(255);not null"`
	BillingAddressID  string          `gorm:"type:varchar(255)"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime:false"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of the order's item snapshot.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	ProductID   string          `gorm:"type:varchar(255);not null"`
	ProductName string          `gorm:"type:varchar(255)"`
	SKU         string          `gorm:"column:sku;type:varchar(255)"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    position,
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   decimal.NewFromFloat(item.UnitPrice()),
			LineTotal:   decimal.NewFromFloat(item.LineTotal()),
		})
	}

	return OrderDTO{
		ID:                orderID,
		UserID:            aggregate.UserID(),
		Status:            aggregate.Status().String(),
		Subtotal:          decimal.NewFromFloat(aggregate.Subtotal()),
		TaxAmount:         decimal.NewFromFloat(aggregate.TaxAmount()),
		ShippingAmount:    decimal.NewFromFloat(aggregate.ShippingAmount()),
		TotalAmount:       decimal.NewFromFloat(aggregate.TotalAmount()),
		ShippingAddressID: aggregate.ShippingAddressID(),
		BillingAddressID:  aggregate.BillingAddressID(),
		Notes:             aggregate.Notes(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Subtotal and total columns are informational; the aggregate derives them again.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
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

	return order.RestoreOrder(
		id,
		dto.UserID,
		items,
		status,
		dto.TaxAmount.InexactFloat64(),
		dto.ShippingAmount.InexactFloat64(),
		dto.ShippingAddressID,
		dto.BillingAddressID,
		dto.Notes,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
