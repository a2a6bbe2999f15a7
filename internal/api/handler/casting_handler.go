package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starcast/casting-api/internal/api/metrics"
	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// CastingHandler handles HTTP requests for casting calls and registrations.
type CastingHandler struct {
	service ports.CastingService
}

func NewCastingHandler(service ports.CastingService) *CastingHandler {
	return &CastingHandler{service: service}
}

// List handles GET /api/casting. Public; registration media is stripped.
//
// @Summary      List open casting calls
// @Tags         casting
// @Produce      json
// @Success      200  {array}  ports.CastingSummary
// @Router       /api/casting [get]
func (h *CastingHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// Get handles GET /api/casting/:id. Public summary view.
func (h *CastingHandler) Get(c echo.Context) error {
	call, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaryOf(call))
}

// Create handles POST /api/casting. Casting and admin accounts only.
//
// @Summary      Post a new casting call
// @Tags         casting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      castingRequest  true  "Casting call details"
// @Success      201   {object}  domain.CastingCall
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/casting [post]
func (h *CastingHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req castingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	call, err := h.service.Create(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, call)
}

// Update handles PUT /api/casting/:id. The posting account or an admin.
func (h *CastingHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req castingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	call, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, call)
}

// Delete handles DELETE /api/casting/:id. The posting account or an admin.
func (h *CastingHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registrationResponse{Message: "Casting call deleted successfully"})
}

// Register handles POST /api/casting/:id/register: a talent's application
// with inline media.
//
// @Summary      Register for a casting call
// @Tags         casting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Casting call id"
// @Param        body  body      registerCastingRequest  true  "Application"
// @Success      200   {object}  registrationResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/casting/{id}/register [post]
func (h *CastingHandler) Register(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req registerCastingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Register(c.Request().Context(), caller, c.Param("id"), ports.RegistrationInput{
		PhoneNumber: req.PhoneNumber,
		Photos:      req.Photos,
		Videos:      req.Videos,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	metrics.RegistrationMediaBytes.Observe(float64(domain.RegistrationMediaSize(req.Photos, req.Videos)))
	return c.JSON(http.StatusOK, registrationResponse{Message: "Registered successfully"})
}

// Registrations handles GET /api/casting/:id/registrations: the full
// applications, media included. The posting account or an admin only.
func (h *CastingHandler) Registrations(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	regs, err := h.service.Registrations(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// MyRegistrations handles GET /api/casting/my-registrations.
func (h *CastingHandler) MyRegistrations(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	regs, err := h.service.MyRegistrations(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

func summaryOf(call *domain.CastingCall) ports.CastingSummary {
	ids := make([]string, 0, len(call.Registrations))
	for _, r := range call.Registrations {
		ids = append(ids, r.UserID)
	}
	return ports.CastingSummary{
		ID:                call.ID,
		Title:             call.Title,
		Description:       call.Description,
		Category:          call.Category,
		Location:          call.Location,
		Date:              call.Date,
		Images:            call.Images,
		CreatedBy:         call.CreatedBy,
		RegisteredUserIDs: ids,
	}
}
