package ports

import (
	"context"

	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"
)

// CartRepository persists Cart aggregates, one per customer.
type CartRepository interface {
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update replaces the stored lines with the aggregate's lines.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer returns errs.ObjectNotFoundError when the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetByCustomerForUpdate is GetByCustomer holding a row lock on the cart
	// until the current transaction ends. Checkout and every cart mutation
	// read through it so concurrent writers queue up instead of overwriting
	// each other's lines.
	GetByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
