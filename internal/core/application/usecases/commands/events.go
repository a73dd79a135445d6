package commands

import (
	"context"
	"log/slog"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/ports"
)

// statusNotifier publishes committed order status changes. Failures are
// logged and swallowed: the change is already durable.
type statusNotifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newStatusNotifier(publisher ports.EventPublisher, logger *slog.Logger) statusNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return statusNotifier{publisher: publisher, logger: logger}
}

func (n statusNotifier) notify(ctx context.Context, o *order.Order, from status.OrderStatus, clock Clock) {
	if n.publisher == nil {
		return
	}
	event := ports.OrderStatusChanged{
		OrderID:      o.ID(),
		OrderCode:    o.Code(),
		RestaurantID: o.RestaurantID(),
		CustomerID:   o.CustomerID(),
		From:         from,
		To:           o.Status(),
		DeliveryID:   o.DeliveryID(),
		OccurredAt:   clock().UTC(),
	}
	if err := n.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish order status change",
			"order_id", o.ID().String(),
			"status", o.Status().String(),
			"error", err)
	}
}
