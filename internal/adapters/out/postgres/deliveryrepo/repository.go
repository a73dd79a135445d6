package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"quickbite/internal/adapters/out/postgres/pgerr"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new delivery. The unique index on order_id turns a second
// delivery for the same order into a conflict.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "deliveries_order_id_key") {
			return errs.NewConflictErrorWithCause("delivery for order "+aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"partner_id":        dto.PartnerID,
			"status":            dto.Status,
			"distance_km":       dto.DistanceKm,
			"estimated_minutes": dto.EstimatedMinutes,
			"picked_up_at":      dto.PickedUpAt,
			"delivered_at":      dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.first(r.db.WithContext(ctx), "delivery", "id = ?", id)
}

// GetForUpdate retrieves a delivery and holds a row lock on it until the
// current transaction ends.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "delivery", "id = ?", id)
}

// Accept claims an ASSIGNED delivery in a single UPDATE guarded by
// status and partner_id, so exactly one of any number of concurrent callers
// matches the row. A miss is resolved into not-found or no-longer-available.
func (r *GormDeliveryRepository) Accept(ctx context.Context, deliveryID, partnerID kernel.UUID, acceptedAt time.Time) error {
	if err := errors.Join(deliveryID.Validate(), partnerID.Validate()); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ? AND partner_id IS NULL", deliveryID.Bytes(), status.DeliveryAssigned.String()).
		Updates(map[string]any{
			"partner_id":  partnerID.Bytes(),
			"status":      status.DeliveryAccepted.String(),
			"accepted_at": acceptedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&DeliveryDTO{}).Where("id = ?", deliveryID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("delivery", deliveryID.String())
	}
	return delivery.ErrNoLongerAvailable
}

func (r *GormDeliveryRepository) first(db *gorm.DB, kind, where string, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := db.First(&dto, where, id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
