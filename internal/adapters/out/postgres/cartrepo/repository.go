package cartrepo

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the cart row and its delivery modes.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the selection and rewrites the delivery mode rows, so
// removed modes disappear and positions follow the aggregate.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&CartDTO{}).
			Where("id = ?", dto.ID).
			Updates(map[string]any{"delivery_mode_code": dto.DeliveryModeCode})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("cart_id = ?", dto.ID).Delete(&DeliveryModeDTO{}).Error; err != nil {
			return err
		}
		if len(dto.DeliveryModes) == 0 {
			return nil
		}
		return tx.Create(&dto.DeliveryModes).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cart by ID and locks its row until the surrounding
// transaction ends.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.withModes(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithoutDeliveryMode returns carts that offer delivery modes but
// have none selected. A non-positive limit returns all of them. Returned
// rows are locked; carts locked by another transaction are skipped.
func (r *GormCartRepository) GetAllWithoutDeliveryMode(ctx context.Context, limit int) ([]*cart.Cart, error) {
	query := r.withModes(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("delivery_mode_code IS NULL").
		Where("EXISTS (SELECT 1 FROM cart_delivery_modes m WHERE m.cart_id = carts.id)").
		Order("created_at, id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []CartDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

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

func (r *GormCartRepository) withModes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("DeliveryModes", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
