package commands

import (
	"context"
	"log/slog"
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/ports"
)

// MarkDeliveryPickedUpCommandHandler moves an ACCEPTED delivery to PICKED_UP
// and its order to OUT_FOR_DELIVERY, atomically.
type MarkDeliveryPickedUpCommandHandler struct {
	advancer deliveryAdvancer
}

func NewMarkDeliveryPickedUpCommandHandler(
	uowFactory DispatchUoWFactory,
	clock Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) MarkDeliveryPickedUpCommandHandler {
	return MarkDeliveryPickedUpCommandHandler{advancer: newDeliveryAdvancer(uowFactory, clock, publisher, logger)}
}

func (h MarkDeliveryPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryPickedUpCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.advancer.advance(ctx, cmd.PartnerID(), cmd.DeliveryID(),
		func(d *delivery.Delivery, now time.Time) error {
			return d.MarkPickedUp(cmd.PartnerID(), now)
		},
		status.OrderOutForDelivery,
	)
}
