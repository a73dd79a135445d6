package http

import (
	"net/http"
	"time"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/delivery"
	"quickbite/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListAvailableDeliveries handles GET /api/v1/partner/deliveries/available.
// An offline partner sees an empty list.
func (s *Server) ListAvailableDeliveries(c echo.Context) error {
	query, err := queries.NewListAvailableDeliveriesForPartnerQuery(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListAvailable.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDeliveryViews(views))
}

// ListActiveDeliveries handles GET /api/v1/partner/deliveries/active.
func (s *Server) ListActiveDeliveries(c echo.Context) error {
	query, err := queries.NewGetActiveDeliveriesQuery(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListActive.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDeliveryViews(views))
}

// AcceptDelivery handles PUT /api/v1/partner/deliveries/{deliveryId}/accept.
func (s *Server) AcceptDelivery(c echo.Context) error {
	return s.advanceDelivery(c, func(c echo.Context, deliveryID kernel.UUID) (*delivery.Delivery, error) {
		cmd, err := commands.NewAcceptDeliveryCommand(mustPrincipal(c).ID, deliveryID)
		if err != nil {
			return nil, err
		}
		return s.handlers.AcceptDelivery.Handle(c.Request().Context(), cmd)
	})
}

// PickUpDelivery handles PUT /api/v1/partner/deliveries/{deliveryId}/pickup.
func (s *Server) PickUpDelivery(c echo.Context) error {
	return s.advanceDelivery(c, func(c echo.Context, deliveryID kernel.UUID) (*delivery.Delivery, error) {
		cmd, err := commands.NewMarkDeliveryPickedUpCommand(mustPrincipal(c).ID, deliveryID)
		if err != nil {
			return nil, err
		}
		return s.handlers.PickUpDelivery.Handle(c.Request().Context(), cmd)
	})
}

// DeliverDelivery handles PUT /api/v1/partner/deliveries/{deliveryId}/deliver.
func (s *Server) DeliverDelivery(c echo.Context) error {
	return s.advanceDelivery(c, func(c echo.Context, deliveryID kernel.UUID) (*delivery.Delivery, error) {
		cmd, err := commands.NewMarkDeliveryDeliveredCommand(mustPrincipal(c).ID, deliveryID)
		if err != nil {
			return nil, err
		}
		return s.handlers.DeliverDelivery.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) advanceDelivery(
	c echo.Context,
	step func(c echo.Context, deliveryID kernel.UUID) (*delivery.Delivery, error),
) error {
	deliveryID, err := pathID(c, "deliveryId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	d, err := step(c, deliveryID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toDelivery(d))
}

// GetEarnings handles GET /api/v1/partner/earnings?since=RFC3339.
func (s *Server) GetEarnings(c echo.Context) error {
	var since *time.Time
	if err := runtime.BindQueryParameter("form", true, false, "since", c.QueryParams(), &since); err != nil {
		return badRequest(c, err.Error())
	}
	from := queries.StartOfDay(s.clock())
	if since != nil {
		from = *since
	}

	query, err := queries.NewGetEarningsSinceQuery(mustPrincipal(c).ID, from)
	if err != nil {
		return s.fail(c, err)
	}

	earnings, err := s.handlers.GetEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, Earnings{
		Since:           earnings.Since,
		Count:           earnings.Count,
		TotalPayout:     earnings.TotalPayout.String(),
		TotalDistanceKm: earnings.TotalDistanceKm,
	})
}

// SetAvailability handles PUT /api/v1/partner/availability.
func (s *Server) SetAvailability(c echo.Context) error {
	var body Availability
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(mustPrincipal(c).ID, body.Available)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.handlers.SetAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
