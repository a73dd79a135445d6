package commands

import (
	"context"
	"log/slog"
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/ports"
)

// MarkDeliveryDeliveredCommandHandler moves a PICKED_UP delivery to DELIVERED
// and its order to DELIVERED. Both become visible in the same commit or
// neither does.
type MarkDeliveryDeliveredCommandHandler struct {
	advancer deliveryAdvancer
}

func NewMarkDeliveryDeliveredCommandHandler(
	uowFactory DispatchUoWFactory,
	clock Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) MarkDeliveryDeliveredCommandHandler {
	return MarkDeliveryDeliveredCommandHandler{advancer: newDeliveryAdvancer(uowFactory, clock, publisher, logger)}
}

func (h MarkDeliveryDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryDeliveredCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.advancer.advance(ctx, cmd.PartnerID(), cmd.DeliveryID(),
		func(d *delivery.Delivery, now time.Time) error {
			return d.MarkDelivered(cmd.PartnerID(), now)
		},
		status.OrderDelivered,
	)
}
