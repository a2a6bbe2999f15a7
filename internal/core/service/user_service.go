package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// UserService implements listing, retrieval, partial profile updates, and
// deletion of user accounts under the authorization policy.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

// List returns every user record. Admin only.
func (s *UserService) List(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	if !domain.CanReadAll(caller) {
		return nil, domain.ErrNotAuthorized
	}
	return s.repo.List(ctx)
}

// Get returns one user by id. Any authenticated caller may read a profile.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial payload to the target's record. Order matters:
// the target is fetched first (not-found beats authorization), then
// ownership, then the role change, then the profile fields. The whole
// batch persists in one write or not at all.
func (s *UserService) Update(ctx context.Context, caller domain.Caller, targetID string, input ports.UpdateUserInput) (*domain.User, error) {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(caller, target.ID) {
		return nil, domain.ErrNotAuthorized
	}

	roleChanged := ""
	if input.Role.Set {
		requested := input.Role.Or("")
		if err := domain.CanChangeRole(caller, target.ID, requested); err != nil {
			return nil, err
		}
		if requested != target.Role {
			roleChanged = requested
		}
		target.Role = requested
	}

	if err := mergeProfile(target, input); err != nil {
		return nil, err
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, target); err != nil {
		return nil, err
	}

	if roleChanged != "" {
		s.audit.Record(domain.AuditEvent{
			ID:        uuid.NewString(),
			Action:    domain.AuditRoleChanged,
			ActorID:   caller.ID,
			SubjectID: target.ID,
			Detail:    "role set to " + roleChanged,
			CreatedAt: target.UpdatedAt,
		})
	}
	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    domain.AuditProfileUpdated,
		ActorID:   caller.ID,
		SubjectID: target.ID,
		CreatedAt: target.UpdatedAt,
	})

	s.logger.Info().Str("user_id", target.ID).Str("actor_id", caller.ID).Msg("profile updated")
	return target, nil
}

// Delete removes the target account. Admin only, never the admin's own.
func (s *UserService) Delete(ctx context.Context, caller domain.Caller, targetID string) error {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := domain.CanDelete(caller, target.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, target.ID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    domain.AuditUserDeleted,
		ActorID:   caller.ID,
		SubjectID: target.ID,
		CreatedAt: time.Now().UTC(),
	})
	s.logger.Info().Str("user_id", target.ID).Str("actor_id", caller.ID).Msg("user deleted")
	return nil
}

// mergeProfile overwrites exactly the fields present in the payload.
// Present-but-falsy values reset a field to its documented default: empty
// string for text fields, nil for date, numeric, and photo fields. The
// credential hash and email are not part of the merge.
func mergeProfile(u *domain.User, in ports.UpdateUserInput) error {
	if in.Name.Set {
		name := strings.TrimSpace(in.Name.Or(""))
		if name == "" {
			return fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		u.Name = name
	}
	if in.LastName.Set {
		u.LastName = strings.TrimSpace(in.LastName.Or(""))
	}
	if in.DOB.Set {
		if in.DOB.Value == nil || in.DOB.Value.IsZero() {
			u.DOB = nil
		} else {
			dob := in.DOB.Value.UTC()
			u.DOB = &dob
		}
	}
	if in.Age.Set {
		if in.Age.Value == nil || *in.Age.Value == 0 {
			u.Age = nil
		} else {
			age := *in.Age.Value
			u.Age = &age
		}
	}
	if in.Address.Set {
		u.Address = strings.TrimSpace(in.Address.Or(""))
	}
	if in.PhoneNumber.Set {
		u.PhoneNumber = strings.TrimSpace(in.PhoneNumber.Or(""))
	}
	if in.ProfilePhoto.Set {
		if in.ProfilePhoto.Value == nil || *in.ProfilePhoto.Value == "" {
			u.ProfilePhoto = nil
		} else {
			photo := *in.ProfilePhoto.Value
			u.ProfilePhoto = &photo
		}
	}
	return nil
}
