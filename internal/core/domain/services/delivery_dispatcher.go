package services

import (
	"errors"
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"
)

var (
	// ErrIncompleteAddress is returned when the restaurant or the customer
	// has no usable address at the moment the order becomes ready.
	ErrIncompleteAddress = errors.New("incomplete address")
	// ErrDeliveryNotNeeded is returned for orders that did not request
	// delivery or already have one.
	ErrDeliveryNotNeeded = errs.NewConflictError("order does not need a delivery")
)

// DeliveryDispatcher creates the delivery for an order that has just entered
// READY_FOR_PICKUP.
//
// Business rules:
//   - the order must be READY_FOR_PICKUP and still need a delivery
//   - both addresses must be present and complete; they are copied by value
//   - payout comes from PayoutCalculator applied to the order total
//   - the new delivery is ASSIGNED with no partner and is attached to the order
type DeliveryDispatcher struct {
	payout PayoutCalculator
}

func NewDeliveryDispatcher(payout PayoutCalculator) DeliveryDispatcher {
	return DeliveryDispatcher{payout: payout}
}

// CreateDelivery builds the delivery. pickup and dropoff are nil when the
// address book has nothing on file.
func (d DeliveryDispatcher) CreateDelivery(
	o *order.Order,
	pickup, dropoff *kernel.Address,
	now time.Time,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != status.OrderReadyForPickup || !o.NeedsDelivery() {
		return nil, ErrDeliveryNotNeeded
	}

	if err := errors.Join(
		checkAddress("restaurant", o.RestaurantID(), pickup),
		checkAddress("customer", o.CustomerID(), dropoff),
	); err != nil {
		return nil, err
	}

	total := o.Total()
	dl, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), *pickup, *dropoff, d.payout.Payout(&total), now)
	if err != nil {
		return nil, err
	}
	if err := o.AttachDelivery(dl.ID()); err != nil {
		return nil, err
	}
	return dl, nil
}

func checkAddress(owner string, ownerID kernel.UUID, a *kernel.Address) error {
	if a == nil {
		return errs.NewValueIsInvalidErrorWithCause(owner+" address "+ownerID.String(), ErrIncompleteAddress)
	}
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(owner+" address "+ownerID.String(), errors.Join(ErrIncompleteAddress, err))
	}
	return nil
}
