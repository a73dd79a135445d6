// Package commands contains the operations that change fulfillment state.
// Every handler validates its command, opens a unit of work, works through
// the repositories bound to it, and commits. A deferred Rollback undoes
// everything on any early return.
package commands

import (
	"context"
	"time"

	"quickbite/internal/core/ports"
)

// Clock returns the current time. Handlers take it as a dependency so
// timestamps can be pinned in tests.
type Clock func() time.Time

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	MenuCatalogFactory interface {
		MenuCatalog() ports.MenuCatalog
	}

	AddressBookFactory interface {
		AddressBook() ports.AddressBook
	}

	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// CartUoW serves the cart mutations.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuCatalogFactory
		UserDirectoryFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW serves cart to order conversion: the order insert and the
	// cart clear share one transaction.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		MenuCatalogFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FulfillmentUoW serves restaurant-driven order transitions, which may
	// create or cancel the order's delivery.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		AddressBookFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// DispatchUoW serves partner actions on deliveries, which mirror their
	// status onto the parent order.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		UserDirectoryFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	PartnerUoW interface {
		TxManager
		UserDirectoryFactory
	}

	PartnerUoWFactory interface {
		Create() PartnerUoW
	}
)
