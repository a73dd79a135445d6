package commands

import (
	"context"

	"quickbite/internal/core/domain/model/delivery"
)

// AcceptDeliveryCommandHandler claims a delivery for a partner.
//
// It runs without an explicit transaction. The claim is one conditional
// UPDATE that only matches an ASSIGNED delivery with no partner, so among
// any number of concurrent callers exactly one wins and the rest get
// delivery.ErrNoLongerAvailable without waiting on each other's commits.
type AcceptDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	clock      Clock
}

func NewAcceptDeliveryCommandHandler(uowFactory DispatchUoWFactory, clock Clock) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	if _, err := uow.UserDirectory().GetPartner(ctx, cmd.PartnerID()); err != nil {
		return nil, err
	}

	deliveries := uow.DeliveryRepository()
	if err := deliveries.Accept(ctx, cmd.DeliveryID(), cmd.PartnerID(), h.clock()); err != nil {
		return nil, err
	}

	return deliveries.Get(ctx, cmd.DeliveryID())
}
