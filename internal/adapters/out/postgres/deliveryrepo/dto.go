// Package deliveryrepo persists the Delivery aggregate in the deliveries
// table, including the conditional write that decides concurrent accepts.
package deliveryrepo

import (
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:deliveries_order_id_key"`
	PartnerID        *uuid.UUID      `gorm:"type:uuid;index"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	Pickup           AddressDTO      `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff          AddressDTO      `gorm:"embedded;embeddedPrefix:dropoff_"`
	Payout           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DistanceKm       *float64
	EstimatedMinutes *int
	AssignedAt       time.Time `gorm:"not null"`
	// AcceptedAt is written only by Accept; the aggregate does not carry it.
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO is the inline snapshot of an address.
type AddressDTO struct {
	Line1      string `gorm:"column:line1"`
	Line2      string `gorm:"column:line2"`
	City       string `gorm:"column:city"`
	State      string `gorm:"column:state"`
	PostalCode string `gorm:"column:postal_code"`
	Country    string `gorm:"column:country"`
}

func fromAddress(a kernel.Address) AddressDTO {
	return AddressDTO{
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func (a AddressDTO) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country)
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var partnerID *uuid.UUID
	if id := d.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return DeliveryDTO{
		ID:               d.ID().Bytes(),
		OrderID:          d.OrderID().Bytes(),
		PartnerID:        partnerID,
		Status:           d.Status().String(),
		Pickup:           fromAddress(d.PickupAddress()),
		Dropoff:          fromAddress(d.DeliveryAddress()),
		Payout:           d.Payout().Decimal(),
		DistanceKm:       d.DistanceKm(),
		EstimatedMinutes: d.EstimatedMinutes(),
		AssignedAt:       d.AssignedAt(),
		PickedUpAt:       d.PickedUpAt(),
		DeliveredAt:      d.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, err := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if err != nil {
			return nil, err
		}
		partnerID = &pID
	}

	pickup, err := dto.Pickup.toDomain()
	if err != nil {
		return nil, err
	}
	dropoff, err := dto.Dropoff.toDomain()
	if err != nil {
		return nil, err
	}
	payout, err := kernel.NewMoney(dto.Payout)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.Restored{
		ID:               id,
		OrderID:          orderID,
		PartnerID:        partnerID,
		Status:           status.DeliveryStatus(dto.Status),
		PickupAddress:    pickup,
		DeliveryAddress:  dropoff,
		Payout:           payout,
		DistanceKm:       dto.DistanceKm,
		EstimatedMinutes: dto.EstimatedMinutes,
		AssignedAt:       dto.AssignedAt.UTC(),
		PickedUpAt:       utcPtr(dto.PickedUpAt),
		DeliveredAt:      utcPtr(dto.DeliveredAt),
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
