package historyrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GORM ledger repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts one ledger row.
func (r *GormStatusHistoryRepository) Append(
	ctx context.Context,
	orderID kernel.UUID,
	entry order.StatusHistoryEntry,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID.Bytes(), entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get returns the ledger of orderID in append order.
func (r *GormStatusHistoryRepository) Get(ctx context.Context, orderID kernel.UUID) ([]order.StatusHistoryEntry, error) {
	var dtos []StatusHistoryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]order.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
