package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is a restaurant moving one of its orders along
// the order table.
type UpdateOrderStatusCommand struct {
	orderID      kernel.UUID
	restaurantID kernel.UUID
	status       status.OrderStatus

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses next, e.g. "READY_FOR_PICKUP".
func NewUpdateOrderStatusCommand(orderID, restaurantID kernel.UUID, next string) (UpdateOrderStatusCommand, error) {
	st, statusErr := status.ParseOrderStatus(next)
	if err := errors.Join(orderID.Validate(), restaurantID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		orderID:      orderID,
		restaurantID: restaurantID,
		status:       st,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID       { return c.orderID }
func (c UpdateOrderStatusCommand) RestaurantID() kernel.UUID  { return c.restaurantID }
func (c UpdateOrderStatusCommand) Status() status.OrderStatus { return c.status }
