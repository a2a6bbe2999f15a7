package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starcast/casting-api/internal/api/metrics"
	"github.com/starcast/casting-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	users ports.UserService
	auth  ports.AuthService
}

func NewUserHandler(users ports.UserService, auth ports.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// List handles GET /api/users. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	users, err := h.users.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id. Any authenticated caller.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	if _, err := ctxCaller(c); err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/:id: the partial profile merge. Owners may
// update their own profile; admins may update anyone's, including the role.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Partial update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), caller, c.Param("id"), input)
	if err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	if input.Role.Set {
		metrics.RoleChangesTotal.WithLabelValues(user.Role).Inc()
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Profile updated successfully", User: user})
}

// ChangePassword handles PUT /api/users/:id/password: the explicit
// credential change path. This is the only route besides registration that
// re-hashes a credential.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User id"
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ChangePassword(c.Request().Context(), caller, c.Param("id"), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

// Delete handles DELETE /api/users/:id. Admin only, never the admin's own
// account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
