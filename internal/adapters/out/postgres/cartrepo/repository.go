package cartrepo

import (
	"context"
	"errors"

	"quickbite/internal/adapters/out/postgres/pgerr"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"

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

// Add inserts the cart and its lines. A second cart for the same customer
// is a conflict.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "carts_customer_id_key") {
			return errs.NewConflictErrorWithCause("cart for customer "+aggregate.CustomerID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored lines with the aggregate's lines.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CartDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("cart", aggregate.ID().String())
		}

		if err := tx.Where("cart_id = ?", dto.ID).Delete(&CartLineDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Lines) == 0 {
			return nil
		}
		return tx.Create(&dto.Lines).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	return r.getByCustomer(r.db.WithContext(ctx), customerID)
}

// GetByCustomerForUpdate locks the cart row until the current transaction ends.
// Only the carts row is locked; its lines are guarded through it.
func (r *GormCartRepository) GetByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	return r.getByCustomer(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), customerID)
}

func (r *GormCartRepository) getByCustomer(db *gorm.DB, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := db.
		Preload("Lines", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
