package cmd

import (
	"log/slog"
	"time"

	httpin "quickbite/internal/adapters/in/http"
	"quickbite/internal/adapters/out/postgres"
	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/services"
	"quickbite/internal/core/ports"
	"quickbite/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	clock      commands.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires use cases over gormDB. publisher may be nil, in
// which case order status changes are not broadcast.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		clock:      func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateGetOrCreateCartCommandHandler() commands.GetOrCreateCartCommandHandler {
	return commands.NewGetOrCreateCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderFromCartCommandHandler() commands.CreateOrderFromCartCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderFromCartCommandHandler(f, c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	dispatcher := services.NewDeliveryDispatcher(services.NewPayoutCalculator())
	return commands.NewUpdateOrderStatusCommandHandler(f, dispatcher, c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.dispatchUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkDeliveryPickedUpCommandHandler() commands.MarkDeliveryPickedUpCommandHandler {
	return commands.NewMarkDeliveryPickedUpCommandHandler(c.dispatchUoWFactory(), c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkDeliveryDeliveredCommandHandler() commands.MarkDeliveryDeliveredCommandHandler {
	return commands.NewMarkDeliveryDeliveredCommandHandler(c.dispatchUoWFactory(), c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSetPartnerAvailabilityCommandHandler() commands.SetPartnerAvailabilityCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerAvailabilityCommandHandler(f)
}

// HTTPHandlers binds every use case served over HTTP.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		GetOrCreateCart:   c.CreateGetOrCreateCartCommandHandler(),
		AddCartItem:       c.CreateAddCartItemCommandHandler(),
		RemoveCartItem:    c.CreateRemoveCartItemCommandHandler(),
		ClearCart:         c.CreateClearCartCommandHandler(),
		CreateOrder:       c.CreateCreateOrderFromCartCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AcceptDelivery:    c.CreateAcceptDeliveryCommandHandler(),
		PickUpDelivery:    c.CreateMarkDeliveryPickedUpCommandHandler(),
		DeliverDelivery:   c.CreateMarkDeliveryDeliveredCommandHandler(),
		SetAvailability:   c.CreateSetPartnerAvailabilityCommandHandler(),

		ListCustomerOrders:   queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		ListRestaurantOrders: queries.NewListRestaurantOrdersQueryHandler(c.gormDB),
		GetOrderDetail:       queries.NewGetOrderDetailQueryHandler(c.gormDB),
		ListAvailable:        queries.NewListAvailableDeliveriesQueryHandler(c.gormDB),
		ListActive:           queries.NewGetActiveDeliveriesQueryHandler(c.gormDB),
		GetEarnings:          queries.NewGetEarningsSinceQueryHandler(c.gormDB),
		GetOwnedRestaurant:   queries.NewGetOwnedRestaurantQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(c.HTTPHandlers(), httpin.NewAuthenticator(c.config.JWTSecret), c.clock, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	backlog := jobs.NewDispatchBacklogJob(
		queries.NewListStaleDeliveriesQueryHandler(c.gormDB),
		c.config.BacklogSchedule,
		c.config.BacklogThreshold,
		c.clock,
		c.logger,
	)
	return jobs.NewJobManager(backlog)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}
