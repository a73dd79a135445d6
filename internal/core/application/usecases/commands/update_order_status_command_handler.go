package commands

import (
	"context"
	"log/slog"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/domain/services"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a restaurant's status change.
//
// The order row is locked for the whole transaction. Side effects that must
// commit together with the new status:
//   - entering READY_FOR_PICKUP creates the delivery when one was requested
//     and none exists; a missing address aborts the transition
//   - cancelling an order that already has a delivery cancels the delivery
//
// Errors:
//   - errs.ObjectNotFoundError: no such order
//   - errs.PermissionDeniedError: the order belongs to another restaurant
//   - errs.ConflictError: the order table does not allow the move
//   - errs.ValueIsInvalidError wrapping services.ErrIncompleteAddress
type UpdateOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	dispatcher services.DeliveryDispatcher
	clock      Clock
	notifier   statusNotifier
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	dispatcher services.DeliveryDispatcher,
	clock Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		clock:      clock,
		notifier:   newStatusNotifier(publisher, logger),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(cmd.RestaurantID()) {
		return nil, errs.NewPermissionDeniedError("order", cmd.OrderID())
	}

	from := o.Status()
	if err := o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	switch o.Status() {
	case status.OrderReadyForPickup:
		if o.NeedsDelivery() {
			if err := h.createDelivery(ctx, uow, o); err != nil {
				return nil, err
			}
		}
	case status.OrderCancelled:
		if err := cancelDelivery(ctx, uow.DeliveryRepository(), o); err != nil {
			return nil, err
		}
	}

	if err := orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, o, from, h.clock)
	return o, nil
}

func (h UpdateOrderStatusCommandHandler) createDelivery(ctx context.Context, uow FulfillmentUoW, o *order.Order) error {
	book := uow.AddressBook()
	pickup, err := book.GetRestaurantAddress(ctx, o.RestaurantID())
	if err != nil {
		return err
	}
	dropoff, err := book.GetCustomerDefaultAddress(ctx, o.CustomerID())
	if err != nil {
		return err
	}

	d, err := h.dispatcher.CreateDelivery(o, pickup, dropoff, h.clock())
	if err != nil {
		return err
	}
	return uow.DeliveryRepository().Add(ctx, d)
}

func cancelDelivery(ctx context.Context, deliveries ports.DeliveryRepository, o *order.Order) error {
	id := o.DeliveryID()
	if id == nil {
		return nil
	}
	d, err := deliveries.GetForUpdate(ctx, *id)
	if err != nil {
		return err
	}
	if err := d.Cancel(); err != nil {
		return err
	}
	return deliveries.Update(ctx, d)
}
