package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starcast/casting-api/internal/core/domain"
)

// ctxCaller extracts the identity claims injected by the Auth middleware.
// Both the subject id and the role must be present; their absence means the
// middleware did not run or the token predates the current claim shape.
func ctxCaller(c echo.Context) (domain.Caller, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Caller{ID: id, Role: role}, nil
}
