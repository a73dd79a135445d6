package ports

import (
	"context"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores status and delivery link. Lines and total never change.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the order and locks its row until the surrounding
	// transaction ends. It must be called inside Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
