package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// ListingCache abstracts the cache for the public casting list (Redis).
// Get returns (nil, nil) on a miss.
type ListingCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

// CastingService implements casting call management and talent registration.
type CastingService struct {
	repo   ports.CastingRepository
	cache  ListingCache
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewCastingService(repo ports.CastingRepository, cache ListingCache, audit ports.AuditRecorder, logger zerolog.Logger) *CastingService {
	return &CastingService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// List returns the public listing view, served from cache when possible.
// Cache failures degrade to a direct read, never to an error.
func (s *CastingService) List(ctx context.Context) ([]ports.CastingSummary, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("listing cache read failed")
	} else if cached != nil {
		var summaries []ports.CastingSummary
		if err := json.Unmarshal(cached, &summaries); err == nil {
			return summaries, nil
		}
		s.logger.Warn().Msg("listing cache held invalid payload, refreshing")
	}

	calls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.CastingSummary, 0, len(calls))
	for _, call := range calls {
		summaries = append(summaries, summarize(call))
	}

	if payload, err := json.Marshal(summaries); err == nil {
		if err := s.cache.Set(ctx, payload); err != nil {
			s.logger.Warn().Err(err).Msg("listing cache write failed")
		}
	}
	return summaries, nil
}

func (s *CastingService) Get(ctx context.Context, id string) (*domain.CastingCall, error) {
	return s.repo.FindByID(ctx, id)
}

// Create posts a new casting call. Casting and admin accounts only.
func (s *CastingService) Create(ctx context.Context, caller domain.Caller, input ports.CastingInput) (*domain.CastingCall, error) {
	if caller.Role != domain.RoleCasting && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAuthorized
	}
	if err := validateCastingInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	call := &domain.CastingCall{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Date:        input.Date,
		Images:      input.Images,
		CreatedBy:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, call)
	if err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	s.logger.Info().Str("casting_id", created.ID).Str("actor_id", caller.ID).Msg("casting call created")
	return created, nil
}

// Update edits a casting call. The posting account or an admin only.
func (s *CastingService) Update(ctx context.Context, caller domain.Caller, id string, input ports.CastingInput) (*domain.CastingCall, error) {
	call, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(caller, call.CreatedBy) {
		return nil, domain.ErrNotAuthorized
	}
	if err := validateCastingInput(input); err != nil {
		return nil, err
	}

	call.Title = strings.TrimSpace(input.Title)
	call.Description = input.Description
	call.Category = input.Category
	call.Location = input.Location
	call.Date = input.Date
	call.Images = input.Images
	call.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, call); err != nil {
		return nil, err
	}
	s.invalidateListing(ctx)
	return call, nil
}

// Delete removes a casting call. The posting account or an admin only.
func (s *CastingService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	call, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(caller, call.CreatedBy) {
		return domain.ErrNotAuthorized
	}
	if err := s.repo.Delete(ctx, call.ID); err != nil {
		return err
	}
	s.invalidateListing(ctx)
	s.logger.Info().Str("casting_id", call.ID).Str("actor_id", caller.ID).Msg("casting call deleted")
	return nil
}

// Register appends the caller's application to the registered set. Talent
// accounts only; one registration per user per call.
func (s *CastingService) Register(ctx context.Context, caller domain.Caller, castingID string, input ports.RegistrationInput) error {
	if caller.Role != domain.RoleUser {
		return domain.ErrNotAuthorized
	}
	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" {
		return fmt.Errorf("%w: phone number is required", domain.ErrValidation)
	}
	if err := domain.ValidateRegistrationMedia(input.Photos, input.Videos); err != nil {
		return err
	}

	call, err := s.repo.FindByID(ctx, castingID)
	if err != nil {
		return err
	}
	if call.IsRegistered(caller.ID) {
		return domain.ErrAlreadyRegistered
	}

	reg := domain.Registration{
		UserID:       caller.ID,
		PhoneNumber:  phone,
		Photos:       input.Photos,
		Videos:       input.Videos,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.AddRegistration(ctx, call.ID, reg); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    domain.AuditRegistered,
		ActorID:   caller.ID,
		SubjectID: call.ID,
		Detail:    fmt.Sprintf("%d photos, %d videos", len(input.Photos), len(input.Videos)),
		CreatedAt: reg.RegisteredAt,
	})
	s.invalidateListing(ctx)
	s.logger.Info().Str("casting_id", call.ID).Str("user_id", caller.ID).Msg("registration accepted")
	return nil
}

// Registrations returns the full applications for a casting call, inline
// media included. The posting account or an admin only.
func (s *CastingService) Registrations(ctx context.Context, caller domain.Caller, castingID string) ([]domain.Registration, error) {
	call, err := s.repo.FindByID(ctx, castingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(caller, call.CreatedBy) {
		return nil, domain.ErrNotAuthorized
	}
	return call.Registrations, nil
}

// MyRegistrations returns the caller's own applications.
func (s *CastingService) MyRegistrations(ctx context.Context, caller domain.Caller) ([]ports.RegisteredCasting, error) {
	calls, err := s.repo.ListByRegisteredUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.RegisteredCasting, 0, len(calls))
	for _, call := range calls {
		for _, reg := range call.Registrations {
			if reg.UserID != caller.ID {
				continue
			}
			out = append(out, ports.RegisteredCasting{
				ID:           call.ID,
				Title:        call.Title,
				Category:     call.Category,
				Location:     call.Location,
				Date:         call.Date,
				PhoneNumber:  reg.PhoneNumber,
				RegisteredAt: reg.RegisteredAt,
			})
			break
		}
	}
	return out, nil
}

func (s *CastingService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

func validateCastingInput(input ports.CastingInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return nil
}

func summarize(call *domain.CastingCall) ports.CastingSummary {
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
