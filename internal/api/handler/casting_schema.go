package handler

import (
	"fmt"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

type castingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Date        string   `json:"date" validate:"required"`
	Images      []string `json:"images"`
}

func (r *castingRequest) toInput() (ports.CastingInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ports.CastingInput{}, fmt.Errorf("%w: date must be an RFC 3339 timestamp or YYYY-MM-DD date", domain.ErrValidation)
	}
	return ports.CastingInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		Date:        date,
		Images:      r.Images,
	}, nil
}

// registerCastingRequest carries a talent's application: phone number plus
// inline data-URL media. Count limits are mirrored here so obviously
// oversized payloads fail before the service runs the size checks.
type registerCastingRequest struct {
	PhoneNumber string   `json:"phoneNumber" validate:"required"`
	Photos      []string `json:"photos" validate:"max=5"`
	Videos      []string `json:"videos" validate:"max=3"`
}

type registrationResponse struct {
	Message string `json:"message"`
}
