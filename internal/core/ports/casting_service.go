package ports

import (
	"context"
	"time"

	"github.com/starcast/casting-api/internal/core/domain"
)

// CastingSummary is the public listing view: registration media is
// stripped, only the registered identities remain so clients can render
// "already registered" state.
type CastingSummary struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	Date              time.Time `json:"date"`
	Images            []string  `json:"images,omitempty"`
	CreatedBy         string    `json:"createdBy"`
	RegisteredUserIDs []string  `json:"registeredUsers"`
}

// CastingInput carries the editable fields of a casting call.
type CastingInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Date        time.Time
	Images      []string
}

// RegistrationInput is a talent's application payload.
type RegistrationInput struct {
	PhoneNumber string
	Photos      []string
	Videos      []string
}

// RegisteredCasting is one entry of a talent's own registration list.
type RegisteredCasting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Date         time.Time `json:"date"`
	PhoneNumber  string    `json:"phoneNumber"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CastingService defines use-case operations for casting calls.
type CastingService interface {
	List(ctx context.Context) ([]CastingSummary, error)
	Get(ctx context.Context, id string) (*domain.CastingCall, error)
	Create(ctx context.Context, caller domain.Caller, input CastingInput) (*domain.CastingCall, error)
	// Update and Delete are restricted to the posting account or an admin.
	Update(ctx context.Context, caller domain.Caller, id string, input CastingInput) (*domain.CastingCall, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	// Register appends the caller's application. Talent accounts only.
	Register(ctx context.Context, caller domain.Caller, castingID string, input RegistrationInput) error
	// Registrations returns the full applications, media included. The
	// posting account or an admin only.
	Registrations(ctx context.Context, caller domain.Caller, castingID string) ([]domain.Registration, error)
	MyRegistrations(ctx context.Context, caller domain.Caller) ([]RegisteredCasting, error)
}
