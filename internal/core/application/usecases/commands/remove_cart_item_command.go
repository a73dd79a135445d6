package commands

import (
	"errors"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand takes one unit off a cart line.
type RemoveCartItemCommand struct {
	customerID kernel.UUID
	lineID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(customerID, lineID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(customerID.Validate(), lineID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{
		customerID: customerID,
		lineID:     lineID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RemoveCartItemCommand) LineID() kernel.UUID     { return c.lineID }
