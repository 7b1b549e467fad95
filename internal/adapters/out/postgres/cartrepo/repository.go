package cartrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Save upserts the cart and replaces its lines. Any other cart of the same user is removed.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous := tx.Model(&CartDTO{}).Select("id").Where("user_id = ? AND id <> ?", dto.UserID, dto.ID)
		if err := tx.Where("cart_id IN (?)", previous).Delete(&CartItemDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND id <> ?", dto.UserID, dto.ID).Delete(&CartDTO{}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", dto.ID).Delete(&CartItemDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
}

// Get retrieves a cart by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the cart owned by userID.
func (r *GormCartRepository) GetByUserID(ctx context.Context, userID string) (*cart.Cart, error) {
	var dto CartDTO
	if err := r.withItems(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart for user", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns a page of carts ordered by creation time and ID.
func (r *GormCartRepository) GetAll(ctx context.Context, skip, limit int) ([]*cart.Cart, error) {
	if limit <= 0 {
		return make([]*cart.Cart, 0), nil
	}

	var dtos []CartDTO
	if err := r.withItems(ctx).
		Order("created_at, id").
		Offset(max(skip, 0)).
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetUpdatedBefore returns the carts last mutated before t.
func (r *GormCartRepository) GetUpdatedBefore(ctx context.Context, t time.Time) ([]*cart.Cart, error) {
	var dtos []CartDTO
	if err := r.withItems(ctx).Order("updated_at").Find(&dtos, "updated_at < ?", t).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Delete removes the cart with id.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.delete(ctx, "id = ?", id.Bytes(), errs.NewObjectNotFoundError("cart", id.String()))
}

// DeleteByUserID removes the cart owned by userID.
func (r *GormCartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.delete(ctx, "user_id = ?", userID, errs.NewObjectNotFoundError("cart for user", userID))
}

// Count returns the number of stored carts.
func (r *GormCartRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CartDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCartRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormCartRepository) delete(ctx context.Context, query string, arg any, notFound error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := tx.Model(&CartDTO{}).Select("id").Where(query, arg)
		if err := tx.Where("cart_id IN (?)", ids).Delete(&CartItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where(query, arg).Delete(&CartDTO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound
		}
		return nil
	})
}

func toDomainList(dtos []CartDTO) ([]*cart.Cart, error) {
	carts := make([]*cart.Cart, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, nil
}
