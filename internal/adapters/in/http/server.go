package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// VoidHandler is a Handler without a result.
type VoidHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f HandlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// VoidHandlerFunc adapts a function to VoidHandler.
type VoidHandlerFunc[In any] func(ctx context.Context, in In) error

func (f VoidHandlerFunc[In]) Handle(ctx context.Context, in In) error {
	return f(ctx, in)
}

// Handlers lists the use cases served over HTTP.
type Handlers struct {
	// Commands
	GetOrCreateCart   Handler[commands.GetOrCreateCartCommand, *cart.Cart]
	AddCartItem       Handler[commands.AddCartItemCommand, *cart.Cart]
	RemoveCartItem    Handler[commands.RemoveCartItemCommand, *cart.Cart]
	ClearCart         VoidHandler[commands.ClearCartCommand]
	CreateOrder       Handler[commands.CreateOrderFromCartCommand, *order.Order]
	UpdateOrderStatus Handler[commands.UpdateOrderStatusCommand, *order.Order]
	AcceptDelivery    Handler[commands.AcceptDeliveryCommand, *delivery.Delivery]
	PickUpDelivery    Handler[commands.MarkDeliveryPickedUpCommand, *delivery.Delivery]
	DeliverDelivery   Handler[commands.MarkDeliveryDeliveredCommand, *delivery.Delivery]
	SetAvailability   VoidHandler[commands.SetPartnerAvailabilityCommand]

	// Queries
	ListCustomerOrders   Handler[queries.ListCustomerOrdersQuery, []queries.OrderSummary]
	ListRestaurantOrders Handler[queries.ListRestaurantOrdersQuery, []queries.OrderSummary]
	GetOrderDetail       Handler[queries.GetOrderDetailQuery, queries.OrderDetail]
	ListAvailable        Handler[queries.ListAvailableDeliveriesQuery, []queries.DeliveryView]
	ListActive           Handler[queries.GetActiveDeliveriesQuery, []queries.DeliveryView]
	GetEarnings          Handler[queries.GetEarningsSinceQuery, queries.Earnings]
	GetOwnedRestaurant   Handler[queries.GetOwnedRestaurantQuery, kernel.UUID]
}

// Server maps HTTP requests onto application use cases.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	clock    func() time.Time
	logger   *slog.Logger
}

func NewServer(handlers Handlers, auth *Authenticator, clock func() time.Time, logger *slog.Logger) *Server {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		auth:     auth,
		clock:    clock,
		logger:   logger.With("component", "http"),
	}
}

// Register installs middleware and routes on e.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return err
	}

	e.HideBanner = true
	e.Use(middleware.Recover(), tracing(), s.requestLogger())

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", s.auth.Middleware(), validate)

	customer := api.Group("/customer", RequireRole(RoleCustomer))
	customer.GET("/cart", s.GetCart)
	customer.DELETE("/cart", s.ClearCart)
	customer.POST("/cart/items", s.AddCartItem)
	customer.DELETE("/cart/items/:lineId", s.RemoveCartItem)
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.ListCustomerOrders)
	customer.GET("/orders/:orderId", s.GetCustomerOrder)

	restaurant := api.Group("/restaurant", RequireRole(RoleRestaurant), s.resolveRestaurant)
	restaurant.GET("/orders", s.ListRestaurantOrders)
	restaurant.GET("/orders/:orderId", s.GetRestaurantOrder)
	restaurant.PUT("/orders/:orderId/status", s.UpdateOrderStatus)

	partner := api.Group("/partner", RequireRole(RolePartner))
	partner.GET("/deliveries/available", s.ListAvailableDeliveries)
	partner.GET("/deliveries/active", s.ListActiveDeliveries)
	partner.PUT("/deliveries/:deliveryId/accept", s.AcceptDelivery)
	partner.PUT("/deliveries/:deliveryId/pickup", s.PickUpDelivery)
	partner.PUT("/deliveries/:deliveryId/deliver", s.DeliverDelivery)
	partner.GET("/earnings", s.GetEarnings)
	partner.PUT("/availability", s.SetAvailability)

	return nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// fail writes err with the status code of its class. Anything unclassified
// is logged and reported as 500 without details.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		return c.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
