package queries

import (
	"database/sql"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryView is the read model partners see for a delivery.
type DeliveryView struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	OrderCode        string
	PartnerID        *kernel.UUID
	Status           status.DeliveryStatus
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	Payout           kernel.Money
	DistanceKm       *float64
	EstimatedMinutes *int
	AssignedAt       time.Time
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
}

const deliveryViewColumns = `
	d.id,
	d.order_id,
	o.code,
	d.partner_id,
	d.status,
	d.pickup_line1, d.pickup_line2, d.pickup_city, d.pickup_state, d.pickup_postal_code, d.pickup_country,
	d.dropoff_line1, d.dropoff_line2, d.dropoff_city, d.dropoff_state, d.dropoff_postal_code, d.dropoff_country,
	d.payout,
	d.distance_km,
	d.estimated_minutes,
	d.assigned_at,
	d.accepted_at,
	d.picked_up_at,
	d.delivered_at
FROM deliveries d
JOIN orders o ON o.id = d.order_id`

type addressColumns struct {
	line1, line2, city, state, postalCode, country string
}

func (a addressColumns) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.line1, a.line2, a.city, a.state, a.postalCode, a.country)
}

func scanDeliveryViews(rows *sql.Rows) ([]DeliveryView, error) {
	views := make([]DeliveryView, 0)

	for rows.Next() {
		var (
			view                 DeliveryView
			id, orderID          uuid.UUID
			partnerID            uuid.NullUUID
			st                   string
			pickup, dropoff      addressColumns
			payout               decimal.Decimal
			distanceKm           sql.NullFloat64
			estimatedMinutes     sql.NullInt32
			acceptedAt, pickedAt sql.NullTime
			deliveredAt          sql.NullTime
		)

		err := rows.Scan(
			&id,
			&orderID,
			&view.OrderCode,
			&partnerID,
			&st,
			&pickup.line1, &pickup.line2, &pickup.city, &pickup.state, &pickup.postalCode, &pickup.country,
			&dropoff.line1, &dropoff.line2, &dropoff.city, &dropoff.state, &dropoff.postalCode, &dropoff.country,
			&payout,
			&distanceKm,
			&estimatedMinutes,
			&view.AssignedAt,
			&acceptedAt,
			&pickedAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if partnerID.Valid {
			p, pErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if pErr != nil {
				return nil, pErr
			}
			view.PartnerID = &p
		}
		if view.Status, err = status.ParseDeliveryStatus(st); err != nil {
			return nil, err
		}
		if view.PickupAddress, err = pickup.toDomain(); err != nil {
			return nil, err
		}
		if view.DeliveryAddress, err = dropoff.toDomain(); err != nil {
			return nil, err
		}
		if view.Payout, err = kernel.NewMoney(payout); err != nil {
			return nil, err
		}
		if distanceKm.Valid {
			v := distanceKm.Float64
			view.DistanceKm = &v
		}
		if estimatedMinutes.Valid {
			v := int(estimatedMinutes.Int32)
			view.EstimatedMinutes = &v
		}
		view.AssignedAt = view.AssignedAt.UTC()
		view.AcceptedAt = nullTime(acceptedAt)
		view.PickedUpAt = nullTime(pickedAt)
		view.DeliveredAt = nullTime(deliveredAt)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
