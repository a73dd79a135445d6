package delivery

import (
	"errors"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrNoLongerAvailable is the conflict every losing Accept observes.
	ErrNoLongerAvailable = errs.NewConflictError("delivery is no longer available")
)

// Delivery is created once per order when it becomes ready for pickup.
//
// Business rules:
//   - pickup and drop-off addresses are snapshots taken at creation
//   - partnerID is unset only while the delivery is ASSIGNED
//   - status moves only along the delivery table in package status
type Delivery struct {
	id               kernel.UUID
	orderID          kernel.UUID
	partnerID        *kernel.UUID
	status           status.DeliveryStatus
	pickupAddress    kernel.Address
	deliveryAddress  kernel.Address
	payout           kernel.Money
	distanceKm       *float64
	estimatedMinutes *int
	assignedAt       time.Time
	pickedUpAt       *time.Time
	deliveredAt      *time.Time
	guard            guard.ConstructorGuard
}

// NewDelivery creates an ASSIGNED delivery with no partner.
func NewDelivery(
	id, orderID kernel.UUID,
	pickup, dropoff kernel.Address,
	payout kernel.Money,
	assignedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:     status.DeliveryAssigned,
		payout:     payout,
		assignedAt: assignedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddresses(pickup, dropoff),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// Restored carries the persisted state handed to RestoreDelivery.
type Restored struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	PartnerID        *kernel.UUID
	Status           status.DeliveryStatus
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	Payout           kernel.Money
	DistanceKm       *float64
	EstimatedMinutes *int
	AssignedAt       time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
}

// RestoreDelivery rebuilds a delivery loaded from storage.
func RestoreDelivery(r Restored) (*Delivery, error) {
	d := &Delivery{
		payout:           r.Payout,
		distanceKm:       r.DistanceKm,
		estimatedMinutes: r.EstimatedMinutes,
		assignedAt:       r.AssignedAt,
		pickedUpAt:       r.PickedUpAt,
		deliveredAt:      r.DeliveredAt,
		guard:            guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		d.setID(r.ID),
		d.setOrderID(r.OrderID),
		d.setAddresses(r.PickupAddress, r.DeliveryAddress),
		r.Status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = r.Status
	if r.PartnerID != nil {
		p := *r.PartnerID
		d.partnerID = &p
	}
	if d.partnerID == nil && d.status != status.DeliveryAssigned && d.status != status.DeliveryCancelled {
		return nil, errs.NewValueIsRequiredErrorWithCause("partner id",
			errors.New(string(d.status)+" delivery must have a partner"))
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID                 { return d.id }
func (d *Delivery) OrderID() kernel.UUID            { return d.orderID }
func (d *Delivery) Status() status.DeliveryStatus   { return d.status }
func (d *Delivery) PickupAddress() kernel.Address   { return d.pickupAddress }
func (d *Delivery) DeliveryAddress() kernel.Address { return d.deliveryAddress }
func (d *Delivery) Payout() kernel.Money            { return d.payout }
func (d *Delivery) DistanceKm() *float64            { return d.distanceKm }
func (d *Delivery) EstimatedMinutes() *int          { return d.estimatedMinutes }
func (d *Delivery) AssignedAt() time.Time           { return d.assignedAt }
func (d *Delivery) PickedUpAt() *time.Time          { return d.pickedUpAt }
func (d *Delivery) DeliveredAt() *time.Time         { return d.deliveredAt }

func (d *Delivery) PartnerID() *kernel.UUID {
	if d.partnerID == nil {
		return nil
	}
	p := *d.partnerID
	return &p
}

// IsAvailable reports whether any partner may still claim the delivery.
func (d *Delivery) IsAvailable() bool {
	return d.status == status.DeliveryAssigned && d.partnerID == nil
}

// IsHeldBy reports whether partnerID is the partner carrying the delivery.
func (d *Delivery) IsHeldBy(partnerID kernel.UUID) bool {
	return d.partnerID != nil && d.partnerID.IsEqual(partnerID)
}

// Accept claims the delivery for partnerID. Persistence must apply the same
// check atomically; this method only keeps the in-memory aggregate honest.
func (d *Delivery) Accept(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}
	if !d.IsAvailable() {
		return ErrNoLongerAvailable
	}
	d.status = status.DeliveryAccepted
	d.partnerID = &partnerID
	return nil
}

// MarkPickedUp moves an ACCEPTED delivery to PICKED_UP.
func (d *Delivery) MarkPickedUp(partnerID kernel.UUID, now time.Time) error {
	if err := d.checkPartner(partnerID); err != nil {
		return err
	}
	if err := d.move(status.DeliveryPickedUp); err != nil {
		return err
	}
	t := now.UTC()
	d.pickedUpAt = &t
	return nil
}

// MarkDelivered moves a PICKED_UP delivery to DELIVERED.
func (d *Delivery) MarkDelivered(partnerID kernel.UUID, now time.Time) error {
	if err := d.checkPartner(partnerID); err != nil {
		return err
	}
	if err := d.move(status.DeliveryDelivered); err != nil {
		return err
	}
	t := now.UTC()
	d.deliveredAt = &t
	return nil
}

// Cancel withdraws a delivery that has not been picked up yet.
func (d *Delivery) Cancel() error {
	return d.move(status.DeliveryCancelled)
}

func (d *Delivery) checkPartner(partnerID kernel.UUID) error {
	if !d.IsHeldBy(partnerID) {
		return errs.NewPermissionDeniedError("delivery", d.id)
	}
	return nil
}

func (d *Delivery) move(next status.DeliveryStatus) error {
	if !d.status.CanTransitionTo(next) {
		return status.TransitionError(status.KindDelivery, string(d.status), string(next))
	}
	d.status = next
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setAddresses(pickup, dropoff kernel.Address) error {
	var err error
	if e := pickup.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("pickup address", e))
	}
	if e := dropoff.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("delivery address", e))
	}
	if err != nil {
		return err
	}
	d.pickupAddress = pickup
	d.deliveryAddress = dropoff
	return nil
}
