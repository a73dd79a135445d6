package commands_test

import (
	"testing"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/core/domain/services"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentFixture struct {
	uow        *MockUoW
	orders     *MockOrderRepository
	deliveries *MockDeliveryRepository
	addresses  *MockAddressBook
	publisher  *MockEventPublisher
	handler    commands.UpdateOrderStatusCommandHandler
}

func newFulfillmentFixture(t *testing.T) fulfillmentFixture {
	t.Helper()
	f := fulfillmentFixture{
		uow:        newTxUoW(t.Context()),
		orders:     new(MockOrderRepository),
		deliveries: new(MockDeliveryRepository),
		addresses:  new(MockAddressBook),
		publisher:  new(MockEventPublisher),
	}
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("DeliveryRepository").Return(f.deliveries).Maybe()
	f.uow.On("AddressBook").Return(f.addresses).Maybe()
	f.publisher.On("PublishOrderStatusChanged", mock.Anything, mock.Anything).Return(nil).Maybe()
	factory := fulfillmentUoWFactory(func() commands.FulfillmentUoW { return f.uow })
	dispatcher := services.NewDeliveryDispatcher(services.NewPayoutCalculator())
	f.handler = commands.NewUpdateOrderStatusCommandHandler(factory, dispatcher, clock, f.publisher, nil)
	return f
}

func pendingOrder(t *testing.T, total string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Snapshot{
		{MenuItemID: kernel.NewUUID(), RestaurantID: kernel.NewUUID(), Quantity: 1, UnitPrice: kernel.MustMoney(total)},
	}, fixedNow)
	require.NoError(t, err)
	return o
}

func orderIn(t *testing.T, st ...status.OrderStatus) *order.Order {
	t.Helper()
	o := pendingOrder(t, "500.00")
	for _, s := range st {
		require.NoError(t, o.ChangeStatus(s))
	}
	return o
}

func testAddress(t *testing.T, line1 string) *kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(line1, "", "Pune", "MH", "411001", "IN")
	require.NoError(t, err)
	return &a
}

func TestUpdateOrderStatusCommandHandler_CancelThenPrepare(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "80.00")

	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "CANCELLED")
	require.NoError(t, err)
	got, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, status.OrderCancelled, got.Status())
	f.orders.AssertExpectations(t)

	second := newFulfillmentFixture(t)
	second.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ = commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "PREPARING")
	_, err = second.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, status.OrderCancelled, o.Status())
	second.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	second.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_OtherRestaurant(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "80.00")
	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), kernel.NewUUID(), "PREPARING")
	_, err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, status.OrderPending, o.Status())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_ReadyCreatesDelivery(t *testing.T) {
	ctx := t.Context()
	o := orderIn(t, status.OrderPreparing)
	pickup, dropoff := testAddress(t, "1 Oven Rd"), testAddress(t, "9 Home St")

	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.addresses.On("GetRestaurantAddress", ctx, o.RestaurantID()).Return(pickup, nil).Once()
	f.addresses.On("GetCustomerDefaultAddress", ctx, o.CustomerID()).Return(dropoff, nil).Once()

	var created *delivery.Delivery
	f.deliveries.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*delivery.Delivery) }).
		Return(nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "READY_FOR_PICKUP")
	got, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, status.OrderReadyForPickup, got.Status())
	assert.Equal(t, status.DeliveryAssigned, created.Status())
	assert.Nil(t, created.PartnerID())
	assert.Equal(t, "50.00", created.Payout().String())
	assert.Equal(t, fixedNow, created.AssignedAt())
	assert.True(t, got.DeliveryID().IsEqual(created.ID()))
	f.deliveries.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_IncompleteAddressAborts(t *testing.T) {
	ctx := t.Context()
	o := orderIn(t, status.OrderPreparing)

	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.addresses.On("GetRestaurantAddress", ctx, o.RestaurantID()).Return(testAddress(t, "1 Oven Rd"), nil).Once()
	f.addresses.On("GetCustomerDefaultAddress", ctx, o.CustomerID()).Return(nil, nil).Once()

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "READY_FOR_PICKUP")
	_, err := f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, services.ErrIncompleteAddress)
	f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
}

func TestUpdateOrderStatusCommandHandler_ExistingDeliveryIsNotDuplicated(t *testing.T) {
	ctx := t.Context()
	line, _ := order.RestoreLine(kernel.NewUUID(), 1, kernel.MustMoney("20.00"))
	deliveryID := kernel.NewUUID()
	o, err := order.RestoreOrder(kernel.NewUUID(), "QB-20250309-AAAAAAAA", kernel.NewUUID(), kernel.NewUUID(),
		status.OrderPreparing, []order.Line{line}, kernel.MustMoney("20.00"), fixedNow, true, &deliveryID)
	require.NoError(t, err)

	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "READY_FOR_PICKUP")
	_, err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.addresses.AssertNotCalled(t, "GetRestaurantAddress", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_CancelWithdrawsDelivery(t *testing.T) {
	ctx := t.Context()
	o := orderIn(t, status.OrderPreparing, status.OrderReadyForPickup)
	pickup, dropoff := testAddress(t, "1 Oven Rd"), testAddress(t, "9 Home St")
	d, err := services.NewDeliveryDispatcher(services.NewPayoutCalculator()).CreateDelivery(o, pickup, dropoff, fixedNow)
	require.NoError(t, err)

	f := newFulfillmentFixture(t)
	f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.deliveries.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once()
	f.deliveries.On("Update", ctx, d).Return(nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), o.RestaurantID(), "CANCELLED")
	_, err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.DeliveryCancelled, d.Status())
	f.deliveries.AssertExpectations(t)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), "SHIPPED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.UpdateOrderStatusCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
