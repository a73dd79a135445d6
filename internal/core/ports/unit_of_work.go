package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Every repository and collaborator
// it returns reads and writes through the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is a no-op after Commit.
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository

	MenuCatalog() MenuCatalog
	AddressBook() AddressBook
	UserDirectory() UserDirectory
}
