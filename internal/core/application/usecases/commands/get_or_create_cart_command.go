package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var ErrGetOrCreateCartCommandIsNotConstructed = errors.New(
	"GetOrCreateCartCommand must be created via NewGetOrCreateCartCommand constructor",
)

// GetOrCreateCartCommand returns the customer's cart, creating an empty one
// on first access.
type GetOrCreateCartCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrCreateCartCommand(customerID kernel.UUID) (GetOrCreateCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrCreateCartCommand{}, err
	}
	return GetOrCreateCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c GetOrCreateCartCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateCartCommandIsNotConstructed)
}

func (c GetOrCreateCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}
