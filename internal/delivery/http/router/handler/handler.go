package handler

import (
	"datadex/internal/delivery/http/middleware"
	"datadex/internal/usecase"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body into input and runs the echo
// validator over it.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return echo.NewHTTPError(400, "Invalid request body")
	}

	return c.Validate(input)
}

// callerFrom extracts the authenticated caller placed on the context by the
// auth middleware. Routes using it are always behind Authenticate, so a
// missing caller yields the zero value and fails authorization downstream.
func callerFrom(c echo.Context) usecase.Caller {
	caller, _ := c.Get(middleware.ContextCallerKey).(usecase.Caller)

	return caller
}
