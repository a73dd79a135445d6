package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the customer's cart.
type ClearCartCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearCartCommand(customerID kernel.UUID) (ClearCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}
