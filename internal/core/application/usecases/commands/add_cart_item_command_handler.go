package commands

import (
	"context"

	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/pkg/errs"
)

// ErrMenuItemUnavailable is returned when the catalog has the item switched off.
var ErrMenuItemUnavailable = errs.NewValueIsInvalidError("menu item is unavailable")

// AddCartItemCommandHandler merges the item into the customer's cart. It
// fails with errs.ObjectNotFoundError for an unknown customer or menu item.
// No price is read here; prices are resolved at checkout.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
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

	item, err := uow.MenuCatalog().GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrMenuItemUnavailable
	}

	c, err := loadOrCreateCart(ctx, uow, cmd.CustomerID(), true)
	if err != nil {
		return nil, err
	}

	if _, err := c.AddItem(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err := uow.CartRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
