package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// AuthService implements registration, login, and password change.
// Hashing happens in exactly two places: Register and ChangePassword.
// The profile update path never touches the credential hash.
type AuthService struct {
	repo       ports.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	// dummyHash is compared against on unknown-email logins so the
	// failure path costs a bcrypt round either way.
	dummyHash []byte
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("starcast-dummy-credential"), bcryptCost)
	if err != nil {
		dummy = nil
	}
	return &AuthService{
		repo:       repo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// NormalizeEmail lower-cases and trims an email the way the store keys it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with the default "user" role. Promotion
// to casting or admin is a separate admin-only profile operation.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credential and issues a signed bearer token. Unknown
// email and wrong password report the same error, and the unknown-email
// path still performs a bcrypt comparison to keep timing uniform.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

// ChangePassword re-hashes and stores a new credential for targetID.
// Owners must present their current password; admins may skip it.
func (s *AuthService) ChangePassword(ctx context.Context, caller domain.Caller, targetID, current, next string) error {
	if !domain.CanModify(caller, targetID) {
		return domain.ErrNotAuthorized
	}
	if len(next) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if caller.Role != domain.RoleAdmin {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
			return domain.ErrInvalidCredentials
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}
	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
