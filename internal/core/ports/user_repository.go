package ports

import (
	"context"

	"github.com/starcast/casting-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The store owns the canonical record; implementations must guarantee
// email uniqueness and single-document atomicity on Update.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update persists every mutable profile field of user in one atomic
	// write. The password hash is not part of the batch.
	Update(ctx context.Context, user *domain.User) error
	// UpdatePassword replaces only the stored credential hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
