package ports

import (
	"context"

	"quickbite/internal/core/domain/model/kernel"
)

// MenuItem is the catalog's view of a dish at the moment it is read.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
	Available    bool
}

// MenuCatalog resolves menu items. It is owned by catalog management.
type MenuCatalog interface {
	// GetMenuItem returns errs.ObjectNotFoundError for unknown items.
	GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItem, error)
}

// AddressBook resolves the addresses a delivery is built from. A nil address
// with a nil error means nothing is on file.
type AddressBook interface {
	GetRestaurantAddress(ctx context.Context, restaurantID kernel.UUID) (*kernel.Address, error)
	GetCustomerDefaultAddress(ctx context.Context, customerID kernel.UUID) (*kernel.Address, error)
}

type Customer struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// Partner is a delivery partner. Available is one flag covering both
// "approved by an admin" and "online for dispatch".
type Partner struct {
	ID        kernel.UUID
	Name      string
	Available bool
}

// UserDirectory looks up the people and tenants the core refers to by id.
// Every Get returns errs.ObjectNotFoundError for unknown ids.
type UserDirectory interface {
	GetCustomer(ctx context.Context, id kernel.UUID) (Customer, error)
	GetPartner(ctx context.Context, id kernel.UUID) (Partner, error)
	SetPartnerAvailable(ctx context.Context, id kernel.UUID, available bool) error
}
