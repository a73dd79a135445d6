package ports

import (
	"context"
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
)

// OrderStatusChanged is emitted after a status change has been committed.
type OrderStatusChanged struct {
	OrderID      kernel.UUID
	OrderCode    string
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	From         status.OrderStatus
	To           status.OrderStatus
	DeliveryID   *kernel.UUID
	OccurredAt   time.Time
}

// EventPublisher delivers domain events to other services. A failed publish
// never undoes the committed change that produced the event.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
