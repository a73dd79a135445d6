package commands

import (
	"context"

	"quickbite/internal/core/domain/model/cart"
)

// GetOrCreateCartCommandHandler fails with errs.ObjectNotFoundError when the
// customer is unknown.
type GetOrCreateCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewGetOrCreateCartCommandHandler(uowFactory CartUoWFactory) GetOrCreateCartCommandHandler {
	return GetOrCreateCartCommandHandler{uowFactory: uowFactory}
}

func (h GetOrCreateCartCommandHandler) Handle(ctx context.Context, cmd GetOrCreateCartCommand) (*cart.Cart, error) {
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

	c, err := loadOrCreateCart(ctx, uow, cmd.CustomerID(), false)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
