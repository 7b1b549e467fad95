// Package historyrepo persists the append-only order status ledger.
package historyrepo

import (
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusHistoryDTO is one ledger row. The serial ID preserves append order.
type StatusHistoryDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	Reason     string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"column:occurred_at;not null"`
}

// TableName overrides GORM's default naming convention to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(orderID uuid.UUID, entry order.StatusHistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		OrderID:    orderID,
		FromStatus: entry.From().String(),
		ToStatus:   entry.To().String(),
		Reason:     entry.Reason(),
		Timestamp:  entry.Timestamp(),
	}
}

func toDomain(dto StatusHistoryDTO) (order.StatusHistoryEntry, error) {
	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return order.StatusHistoryEntry{}, err
	}
	return order.NewStatusHistoryEntry(from, to, dto.Reason, dto.Timestamp.UTC()), nil
}
