package http

import (
	"quickbite/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromGoogle(id)
}

func mustPrincipal(c echo.Context) AuthenticatedPrincipal {
	p, _ := principalFrom(c)
	return p
}
