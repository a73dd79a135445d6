package http

import (
	"net/http"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/customer/cart.
func (s *Server) GetCart(c echo.Context) error {
	cmd, err := commands.NewGetOrCreateCartCommand(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	cart, err := s.handlers.GetOrCreateCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCart(cart))
}

// AddCartItem handles POST /api/v1/customer/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	var body AddCartItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	menuItemID, err := kernel.UUIDFromGoogle(body.MenuItemID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(mustPrincipal(c).ID, menuItemID, body.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	cart, err := s.handlers.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCart(cart))
}

// RemoveCartItem handles DELETE /api/v1/customer/cart/items/{lineId}.
func (s *Server) RemoveCartItem(c echo.Context) error {
	lineID, err := pathID(c, "lineId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewRemoveCartItemCommand(mustPrincipal(c).ID, lineID)
	if err != nil {
		return s.fail(c, err)
	}

	cart, err := s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCart(cart))
}

// ClearCart handles DELETE /api/v1/customer/cart.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(mustPrincipal(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.handlers.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
