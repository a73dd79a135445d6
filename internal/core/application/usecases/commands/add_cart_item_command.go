package commands

import (
	"errors"
	"fmt"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand adds quantity units of a menu item to the customer's cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, pizzaID, 2)
//	if err != nil {
//	    return err // quantity < 1 or bad ids
//	}
//	c, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct {
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(customerID, menuItemID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{guard: guard.NewConstructorGuard()}

	var qtyErr error
	if quantity < 1 {
		qtyErr = errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, "unbounded",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if err := errors.Join(
		customerID.Validate(),
		menuItemID.Validate(),
		qtyErr,
	); err != nil {
		return AddCartItemCommand{}, err
	}

	cmd.customerID = customerID
	cmd.menuItemID = menuItemID
	cmd.quantity = quantity
	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AddCartItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c AddCartItemCommand) Quantity() int           { return c.quantity }
