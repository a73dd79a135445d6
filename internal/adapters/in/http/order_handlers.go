package http

import (
	"errors"
	"net/http"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/status"
	"quickbite/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const restaurantKey = "restaurant_id"

// resolveRestaurant maps the owner principal to the restaurant it runs.
func (s *Server) resolveRestaurant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		query, err := queries.NewGetOwnedRestaurantQuery(mustPrincipal(c).ID)
		if err != nil {
			return s.fail(c, err)
		}
		restaurantID, err := s.handlers.GetOwnedRestaurant.Handle(c.Request().Context(), query)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return c.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "forbidden: no restaurant for this account",
				})
			}
			return s.fail(c, err)
		}
		c.Set(restaurantKey, restaurantID)
		return next(c)
	}
}

func restaurantFrom(c echo.Context) kernel.UUID {
	id, _ := c.Get(restaurantKey).(kernel.UUID)
	return id
}

// PlaceOrder handles POST /api/v1/customer/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	cmd, err := commands.NewCreateOrderFromCartCommand(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(o))
}

// ListCustomerOrders handles GET /api/v1/customer/orders.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	query, err := queries.NewListCustomerOrdersQuery(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	summaries, err := s.handlers.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetCustomerOrder handles GET /api/v1/customer/orders/{orderId}.
func (s *Server) GetCustomerOrder(c echo.Context) error {
	return s.orderDetail(c, mustPrincipal(c).ID)
}

// GetRestaurantOrder handles GET /api/v1/restaurant/orders/{orderId}.
func (s *Server) GetRestaurantOrder(c echo.Context) error {
	return s.orderDetail(c, restaurantFrom(c))
}

func (s *Server) orderDetail(c echo.Context, viewerID kernel.UUID) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrderDetailQuery(orderID, viewerID)
	if err != nil {
		return s.fail(c, err)
	}

	detail, err := s.handlers.GetOrderDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetail(detail))
}

// ListRestaurantOrders handles GET /api/v1/restaurant/orders?status=...
func (s *Server) ListRestaurantOrders(c echo.Context) error {
	var names *[]string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &names); err != nil {
		return badRequest(c, err.Error())
	}

	var statuses []status.OrderStatus
	if names != nil {
		for _, name := range *names {
			st, err := status.ParseOrderStatus(name)
			if err != nil {
				return s.fail(c, err)
			}
			statuses = append(statuses, st)
		}
	}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantFrom(c), statuses...)
	if err != nil {
		return s.fail(c, err)
	}

	summaries, err := s.handlers.ListRestaurantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// UpdateOrderStatus handles PUT /api/v1/restaurant/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var body UpdateOrderStatus
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, restaurantFrom(c), body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}
