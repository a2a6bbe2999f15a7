package handler

import (
	"fmt"
	"time"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// updateUserRequest is the partial profile update payload. Every field is
// optional and presence-aware: a key that is absent from the JSON body is
// left untouched, while a key sent as null (or a falsy value) resets the
// field to its default.
type updateUserRequest struct {
	Name         domain.Optional[string] `json:"name"`
	LastName     domain.Optional[string] `json:"lastName"`
	DOB          domain.Optional[string] `json:"dob"`
	Age          domain.Optional[int]    `json:"age"`
	Address      domain.Optional[string] `json:"address"`
	PhoneNumber  domain.Optional[string] `json:"phoneNumber"`
	ProfilePhoto domain.Optional[string] `json:"profilePhoto"`
	Role         domain.Optional[string] `json:"role"`
}

func (r *updateUserRequest) toInput() (ports.UpdateUserInput, error) {
	input := ports.UpdateUserInput{
		Name:         r.Name,
		LastName:     r.LastName,
		Age:          r.Age,
		Address:      r.Address,
		PhoneNumber:  r.PhoneNumber,
		ProfilePhoto: r.ProfilePhoto,
		Role:         r.Role,
	}

	if r.DOB.Set {
		if r.DOB.Value == nil || *r.DOB.Value == "" {
			input.DOB = domain.Null[time.Time]()
		} else {
			dob, err := parseDate(*r.DOB.Value)
			if err != nil {
				return input, fmt.Errorf("%w: dob must be an RFC 3339 timestamp or YYYY-MM-DD date", domain.ErrValidation)
			}
			input.DOB = domain.Some(dob)
		}
	}
	return input, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type messageResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// parseDate accepts either an RFC 3339 timestamp or a bare date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
