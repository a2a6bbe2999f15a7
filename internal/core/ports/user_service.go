package ports

import (
	"context"
	"time"

	"github.com/starcast/casting-api/internal/core/domain"
)

// UpdateUserInput is the partial profile update payload. Every field is
// presence-aware: an absent field is left untouched, an explicit null (or
// falsy value) resets the field to its documented default, and a concrete
// value overwrites it.
type UpdateUserInput struct {
	Name         domain.Optional[string]
	LastName     domain.Optional[string]
	DOB          domain.Optional[time.Time]
	Age          domain.Optional[int]
	Address      domain.Optional[string]
	PhoneNumber  domain.Optional[string]
	ProfilePhoto domain.Optional[string]
	Role         domain.Optional[string]
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	// List returns every user. Admin only.
	List(ctx context.Context, caller domain.Caller) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Update applies the partial payload under the authorization policy
	// and persists the whole batch atomically.
	Update(ctx context.Context, caller domain.Caller, targetID string, input UpdateUserInput) (*domain.User, error)
	// Delete removes another user's account. Admin only, never self.
	Delete(ctx context.Context, caller domain.Caller, targetID string) error
}
