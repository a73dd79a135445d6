package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var ErrCreateOrderFromCartCommandIsNotConstructed = errors.New(
	"CreateOrderFromCartCommand must be created via NewCreateOrderFromCartCommand constructor",
)

// CreateOrderFromCartCommand checks out the customer's cart. It is issued by
// the customer API and by the payment event consumer alike.
type CreateOrderFromCartCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOrderFromCartCommand(customerID kernel.UUID) (CreateOrderFromCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateOrderFromCartCommand{}, err
	}
	return CreateOrderFromCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOrderFromCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromCartCommandIsNotConstructed)
}

func (c CreateOrderFromCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}
