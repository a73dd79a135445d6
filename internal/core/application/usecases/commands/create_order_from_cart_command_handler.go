package commands

import (
	"context"
	"errors"
	"log/slog"

	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"
	"quickbite/internal/pkg/errs"
)

// CreateOrderFromCartCommandHandler converts a cart into a PENDING order.
//
// Every line is priced from the catalog at this moment. The new order is
// inserted and the cart is emptied in the same transaction, so no reader
// ever sees an order whose cart still holds the items, or the reverse.
//
// Example:
//
//	cmd, _ := NewCreateOrderFromCartCommand(customerID)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrCartIsEmpty) {
//	    // nothing to check out
//	}
type CreateOrderFromCartCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      Clock
	notifier   statusNotifier
}

func NewCreateOrderFromCartCommandHandler(
	uowFactory CheckoutUoWFactory,
	clock Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderFromCartCommandHandler {
	return CreateOrderFromCartCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   newStatusNotifier(publisher, logger),
	}
}

func (h CreateOrderFromCartCommandHandler) Handle(ctx context.Context, cmd CreateOrderFromCartCommand) (*order.Order, error) {
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

	carts := uow.CartRepository()
	c, err := carts.GetByCustomerForUpdate(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, cart.ErrCartIsEmpty
	}
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	snapshot, err := priceLines(ctx, uow.MenuCatalog(), c.Lines())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), snapshot, h.clock())
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	c.Clear()
	if err := carts.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, o, "", h.clock)
	return o, nil
}

func priceLines(ctx context.Context, catalog ports.MenuCatalog, lines []*cart.Line) ([]order.Snapshot, error) {
	snapshot := make([]order.Snapshot, 0, len(lines))
	for _, l := range lines {
		item, err := catalog.GetMenuItem(ctx, l.MenuItemID())
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, order.Snapshot{
			MenuItemID:   l.MenuItemID(),
			RestaurantID: item.RestaurantID,
			Quantity:     l.Quantity(),
			UnitPrice:    item.Price,
		})
	}
	return snapshot, nil
}
