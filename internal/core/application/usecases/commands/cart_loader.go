package commands

import (
	"context"
	"errors"

	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/pkg/errs"
)

// loadOrCreateCart returns the customer's cart, creating and storing an
// empty one when none exists. The customer must be known to the directory.
// With forUpdate set an existing cart stays row locked until the unit of
// work ends.
func loadOrCreateCart(ctx context.Context, uow CartUoW, customerID kernel.UUID, forUpdate bool) (*cart.Cart, error) {
	if _, err := uow.UserDirectory().GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	carts := uow.CartRepository()
	get := carts.GetByCustomer
	if forUpdate {
		get = carts.GetByCustomerForUpdate
	}
	c, err := get(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	c, err = cart.NewCart(kernel.NewUUID(), customerID)
	if err != nil {
		return nil, err
	}
	if err := carts.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
