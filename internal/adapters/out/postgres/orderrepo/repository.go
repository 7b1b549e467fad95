package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/historyrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order row and replaces its item snapshot.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves all orders placed by userID, oldest first.
func (r *GormOrderRepository) GetByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).Order("created_at, id").Where("user_id = ?", userID))
}

// GetByStatus retrieves all orders currently in status, oldest first.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).Order("created_at, id").Where("status = ?", status.String()))
}

// GetAll returns a page of orders ordered by creation time and ID.
func (r *GormOrderRepository) GetAll(ctx context.Context, skip, limit int) ([]*order.Order, error) {
	if limit <= 0 {
		return make([]*order.Order, 0), nil
	}
	return r.find(r.withItems(ctx).Order("created_at, id").Offset(max(skip, 0)).Limit(limit))
}

// Delete removes the order, its items and its status history.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id.Bytes()).Delete(&historyrepo.StatusHistoryDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&OrderDTO{}, "id = ?", id.Bytes())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return nil
	})
}

// Count returns the number of stored orders.
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
