package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "quickbite/internal/adapters/out/postgres"
	"quickbite/internal/adapters/out/postgres/pgtest"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM Unit of Work against a real
// PostgreSQL migrated with the embedded schema.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.pg.DSN))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.MenuCatalog())
	suite.NotNil(uow1.AddressBook())
	suite.NotNil(uow1.UserDirectory())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Rollback(ctx), "Rollback after commit is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_OrderAndDeliveryCommitTogether mirrors a restaurant marking
// an order ready: the delivery insert and the order update share one commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderAndDeliveryCommitTogether() {
	ctx := context.Background()
	o := createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.ChangeStatus(status.OrderPreparing))
	suite.Require().NoError(locked.ChangeStatus(status.OrderReadyForPickup))

	d := createTestDelivery(locked.ID())
	suite.Require().NoError(locked.AttachDelivery(d.ID()))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))

	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(status.OrderReadyForPickup, stored.Status())
	suite.Require().NotNil(stored.DeliveryID())
	suite.True(d.ID().IsEqual(*stored.DeliveryID()))

	storedDelivery, err := reader.DeliveryRepository().Get(ctx, *stored.DeliveryID())
	suite.Require().NoError(err)
	suite.True(d.ID().IsEqual(storedDelivery.ID()))
}

// TestUnitOfWork_TransactionRollback mirrors a failed checkout: neither the
// order nor the cleared cart survive.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = c.AddItem(kernel.NewUUID(), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CartRepository().Add(ctx, c))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	c.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, c))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")

	stored, err := reader.CartRepository().GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Len(stored.Lines(), 1, "Cart lines should survive the rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := createTestOrder()
	order2 := createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = reader.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := createTestOrder()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func createTestOrder() *order.Order {
	restaurantID := kernel.NewUUID()
	o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Snapshot{
		{MenuItemID: kernel.NewUUID(), RestaurantID: restaurantID, Quantity: 1, UnitPrice: kernel.MustMoney("80.00")},
	}, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	return o
}

func createTestDelivery(orderID kernel.UUID) *delivery.Delivery {
	pickup, _ := kernel.NewAddress("1 Market St", "", "Springfield", "", "", "")
	dropoff, _ := kernel.NewAddress("42 Elm Ave", "", "Springfield", "", "", "")
	d, _ := delivery.NewDelivery(kernel.NewUUID(), orderID, pickup, dropoff,
		kernel.MustMoney("30.00"), time.Date(2025, 3, 14, 12, 40, 0, 0, time.UTC))
	return d
}

func TestUnitOfWorkIntegration(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
