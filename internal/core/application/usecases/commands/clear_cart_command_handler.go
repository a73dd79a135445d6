package commands

import (
	"context"
	"errors"

	"quickbite/internal/pkg/errs"
)

// ClearCartCommandHandler is idempotent: a customer without a cart, or with
// an empty one, is left as is.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carts := uow.CartRepository()
	c, err := carts.GetByCustomerForUpdate(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return nil
	}

	c.Clear()
	if err := carts.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
