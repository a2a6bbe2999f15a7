package ports

import (
	"context"

	"github.com/starcast/casting-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account. New accounts
// always start with the "user" role; promotion is an admin operation.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// AuthService implements registration, login, and explicit password change.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	// Unknown email and wrong password are indistinguishable failures.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ChangePassword re-hashes and stores a new credential. Non-admin
	// callers must present the current password.
	ChangePassword(ctx context.Context, caller domain.Caller, targetID, current, next string) error
}
