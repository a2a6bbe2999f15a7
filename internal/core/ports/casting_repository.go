package ports

import (
	"context"

	"github.com/starcast/casting-api/internal/core/domain"
)

// CastingRepository defines persistence operations for casting calls.
type CastingRepository interface {
	Create(ctx context.Context, call *domain.CastingCall) (*domain.CastingCall, error)
	FindByID(ctx context.Context, id string) (*domain.CastingCall, error)
	List(ctx context.Context) ([]*domain.CastingCall, error)
	Update(ctx context.Context, call *domain.CastingCall) error
	Delete(ctx context.Context, id string) error
	// AddRegistration appends reg to the call's registered set in a single
	// guarded write. It returns domain.ErrAlreadyRegistered when the user
	// is already present, even under concurrent submissions.
	AddRegistration(ctx context.Context, castingID string, reg domain.Registration) error
	// ListByRegisteredUser returns the calls holding a registration by userID.
	ListByRegisteredUser(ctx context.Context, userID string) ([]*domain.CastingCall, error)
}
