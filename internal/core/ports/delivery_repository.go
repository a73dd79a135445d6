package ports

import (
	"context"
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
)

// DeliveryRepository persists Delivery aggregates.
type DeliveryRepository interface {
	// Add returns an errs.ConflictError when the order already has a delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate loads the delivery and locks its row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Accept claims the delivery for partnerID in one conditional write that
	// only matches an ASSIGNED delivery without a partner. Every caller but one
	// gets delivery.ErrNoLongerAvailable; an unknown id gets
	// errs.ObjectNotFoundError.
	Accept(ctx context.Context, deliveryID, partnerID kernel.UUID, acceptedAt time.Time) error
}
