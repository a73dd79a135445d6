package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var (
	ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
		"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
	)
	ErrMarkDeliveryPickedUpCommandIsNotConstructed = errors.New(
		"MarkDeliveryPickedUpCommand must be created via NewMarkDeliveryPickedUpCommand constructor",
	)
	ErrMarkDeliveryDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveryDeliveredCommand must be created via NewMarkDeliveryDeliveredCommand constructor",
	)
)

// partnerDelivery is the payload shared by every partner action on a delivery.
type partnerDelivery struct {
	partnerID  kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func newPartnerDelivery(partnerID, deliveryID kernel.UUID) (partnerDelivery, error) {
	if err := errors.Join(partnerID.Validate(), deliveryID.Validate()); err != nil {
		return partnerDelivery{}, err
	}
	return partnerDelivery{partnerID: partnerID, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (p partnerDelivery) PartnerID() kernel.UUID  { return p.partnerID }
func (p partnerDelivery) DeliveryID() kernel.UUID { return p.deliveryID }

// AcceptDeliveryCommand is a partner claiming an available delivery.
type AcceptDeliveryCommand struct{ partnerDelivery }

func NewAcceptDeliveryCommand(partnerID, deliveryID kernel.UUID) (AcceptDeliveryCommand, error) {
	p, err := newPartnerDelivery(partnerID, deliveryID)
	return AcceptDeliveryCommand{p}, err
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// MarkDeliveryPickedUpCommand is a partner confirming pickup at the restaurant.
type MarkDeliveryPickedUpCommand struct{ partnerDelivery }

func NewMarkDeliveryPickedUpCommand(partnerID, deliveryID kernel.UUID) (MarkDeliveryPickedUpCommand, error) {
	p, err := newPartnerDelivery(partnerID, deliveryID)
	return MarkDeliveryPickedUpCommand{p}, err
}

func (c MarkDeliveryPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryPickedUpCommandIsNotConstructed)
}

// MarkDeliveryDeliveredCommand is a partner confirming drop-off.
type MarkDeliveryDeliveredCommand struct{ partnerDelivery }

func NewMarkDeliveryDeliveredCommand(partnerID, deliveryID kernel.UUID) (MarkDeliveryDeliveredCommand, error) {
	p, err := newPartnerDelivery(partnerID, deliveryID)
	return MarkDeliveryDeliveredCommand{p}, err
}

func (c MarkDeliveryDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryDeliveredCommandIsNotConstructed)
}
