package commands

import (
	"context"
	"log/slog"
	"time"

	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/errs"
)

// deliveryAdvancer moves a delivery one step and mirrors the step onto the
// parent order in the same transaction. Rows are locked order first, then
// delivery, the same order UpdateOrderStatusCommandHandler uses.
//
// The restaurant may already have moved the order to the mirrored status
// itself. The delivery step still happens and the order is left as is.
type deliveryAdvancer struct {
	uowFactory DispatchUoWFactory
	clock      Clock
	notifier   statusNotifier
}

func newDeliveryAdvancer(uowFactory DispatchUoWFactory, clock Clock, publisher ports.EventPublisher, logger *slog.Logger) deliveryAdvancer {
	return deliveryAdvancer{uowFactory: uowFactory, clock: clock, notifier: newStatusNotifier(publisher, logger)}
}

func (a deliveryAdvancer) advance(
	ctx context.Context,
	partnerID, deliveryID kernel.UUID,
	step func(d *delivery.Delivery, now time.Time) error,
	mirror status.OrderStatus,
) (*delivery.Delivery, error) {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()
	orders := uow.OrderRepository()

	current, err := deliveries.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !current.IsHeldBy(partnerID) {
		return nil, errs.NewPermissionDeniedError("delivery", deliveryID)
	}

	o, err := orders.GetForUpdate(ctx, current.OrderID())
	if err != nil {
		return nil, err
	}
	d, err := deliveries.GetForUpdate(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := step(d, a.clock()); err != nil {
		return nil, err
	}

	from := o.Status()
	mirrored := from != mirror
	if mirrored {
		if err := o.ChangeStatus(mirror); err != nil {
			return nil, err
		}
	}

	if err := deliveries.Update(ctx, d); err != nil {
		return nil, err
	}
	if mirrored {
		if err := orders.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	if mirrored {
		a.notifier.notify(ctx, o, from, a.clock)
	}
	return d, nil
}
