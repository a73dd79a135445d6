package commands_test

import (
	"context"
	"time"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 9, 19, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) MenuCatalog() ports.MenuCatalog {
	return m.Called().Get(0).(ports.MenuCatalog)
}

func (m *MockUoW) AddressBook() ports.AddressBook {
	return m.Called().Get(0).(ports.AddressBook)
}

func (m *MockUoW) UserDirectory() ports.UserDirectory {
	return m.Called().Get(0).(ports.UserDirectory)
}

type cartUoWFactory func() commands.CartUoW

func (f cartUoWFactory) Create() commands.CartUoW { return f() }

type checkoutUoWFactory func() commands.CheckoutUoW

func (f checkoutUoWFactory) Create() commands.CheckoutUoW { return f() }

type fulfillmentUoWFactory func() commands.FulfillmentUoW

func (f fulfillmentUoWFactory) Create() commands.FulfillmentUoW { return f() }

type dispatchUoWFactory func() commands.DispatchUoW

func (f dispatchUoWFactory) Create() commands.DispatchUoW { return f() }

type partnerUoWFactory func() commands.PartnerUoW

func (f partnerUoWFactory) Create() commands.PartnerUoW { return f() }

// newTxUoW expects Begin and tolerates the deferred Rollback.
func newTxUoW(ctx context.Context) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	return uow
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Accept(ctx context.Context, deliveryID, partnerID kernel.UUID, at time.Time) error {
	return m.Called(ctx, deliveryID, partnerID, at).Error(0)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.MenuItem), args.Error(1)
}

type MockAddressBook struct{ mock.Mock }

func (m *MockAddressBook) GetRestaurantAddress(ctx context.Context, id kernel.UUID) (*kernel.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Address), args.Error(1)
}

func (m *MockAddressBook) GetCustomerDefaultAddress(ctx context.Context, id kernel.UUID) (*kernel.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Address), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetCustomer(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Customer), args.Error(1)
}

func (m *MockUserDirectory) GetPartner(ctx context.Context, id kernel.UUID) (ports.Partner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Partner), args.Error(1)
}

func (m *MockUserDirectory) SetPartnerAvailable(ctx context.Context, id kernel.UUID, available bool) error {
	return m.Called(ctx, id, available).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}
