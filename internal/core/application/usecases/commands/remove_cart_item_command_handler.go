package commands

import (
	"context"

	"quickbite/internal/core/domain/model/cart"
)

// RemoveCartItemCommandHandler fails with errs.ObjectNotFoundError when the
// customer has no cart or the line is not in it.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
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
	if err != nil {
		return nil, err
	}

	if _, err := c.RemoveItem(cmd.LineID()); err != nil {
		return nil, err
	}

	if err := carts.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
