package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/starcast/casting-api/internal/core/domain"
	"github.com/starcast/casting-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub audit recorder
// ---------------------------------------------------------------------------

type stubAudit struct {
	events []domain.AuditEvent
}

func (a *stubAudit) Record(event domain.AuditEvent) {
	a.events = append(a.events, event)
}

func (a *stubAudit) actions() []string {
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Action)
	}
	return out
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func seedUser(repo *stubUserRepo, id, role string) *domain.User {
	now := time.Now().UTC()
	age := 28
	photo := "data:image/png;base64,aGk="
	dob := time.Date(1997, 6, 15, 0, 0, 0, 0, time.UTC)
	u := &domain.User{
		ID:           id,
		Name:         "Jane",
		LastName:     "Doe",
		DOB:          &dob,
		Age:          &age,
		Address:      "42 Elm St",
		PhoneNumber:  "+1-555-0100",
		Email:        id + "@example.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         role,
		ProfilePhoto: &photo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	repo.users[id] = cloneUser(u)
	return u
}

func newTestUserService(repo *stubUserRepo, audit *stubAudit) *UserService {
	return NewUserService(repo, audit, discardLogger)
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	seedUser(repo, "u2", domain.RoleUser)

	users, err := svc.List(context.Background(), domain.Caller{ID: "a1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}

	for _, role := range []string{domain.RoleUser, domain.RoleCasting} {
		if _, err := svc.List(context.Background(), domain.Caller{ID: "x", Role: role}); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Errorf("role %q: expected ErrNotAuthorized, got %v", role, err)
		}
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update: merge semantics
// ---------------------------------------------------------------------------

func TestUserService_Update_OmittedFieldsUntouched(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seeded := seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	updated, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		Address: domain.Some("99 Oak Ave"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Address != "99 Oak Ave" {
		t.Errorf("address: want %q, got %q", "99 Oak Ave", updated.Address)
	}
	if updated.Name != seeded.Name {
		t.Errorf("name must be untouched, got %q", updated.Name)
	}
	if updated.LastName != "Doe" {
		t.Errorf("last name must be untouched, got %q", updated.LastName)
	}
	if updated.Age == nil || *updated.Age != 28 {
		t.Errorf("age must be untouched, got %v", updated.Age)
	}
	if updated.ProfilePhoto == nil {
		t.Error("profile photo must be untouched")
	}
	if updated.DOB == nil || !updated.DOB.Equal(*seeded.DOB) {
		t.Errorf("dob must be untouched, got %v", updated.DOB)
	}
}

func TestUserService_Update_NullResetsToDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	updated, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		LastName:     domain.Null[string](),
		DOB:          domain.Null[time.Time](),
		Age:          domain.Null[int](),
		Address:      domain.Null[string](),
		PhoneNumber:  domain.Null[string](),
		ProfilePhoto: domain.Null[string](),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.LastName != "" {
		t.Errorf("last name: want empty, got %q", updated.LastName)
	}
	if updated.DOB != nil {
		t.Errorf("dob: want nil, got %v", updated.DOB)
	}
	if updated.Age != nil {
		t.Errorf("age: want nil, got %v", updated.Age)
	}
	if updated.Address != "" {
		t.Errorf("address: want empty, got %q", updated.Address)
	}
	if updated.PhoneNumber != "" {
		t.Errorf("phone: want empty, got %q", updated.PhoneNumber)
	}
	if updated.ProfilePhoto != nil {
		t.Errorf("photo: want nil, got %v", updated.ProfilePhoto)
	}
}

func TestUserService_Update_FalsyValuesReset(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	updated, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		Age:          domain.Some(0),
		DOB:          domain.Some(time.Time{}),
		ProfilePhoto: domain.Some(""),
		Address:      domain.Some(""),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Age != nil {
		t.Errorf("age 0 must reset to nil, got %v", updated.Age)
	}
	if updated.DOB != nil {
		t.Errorf("zero dob must reset to nil, got %v", updated.DOB)
	}
	if updated.ProfilePhoto != nil {
		t.Errorf("empty photo must reset to nil, got %v", updated.ProfilePhoto)
	}
	if updated.Address != "" {
		t.Errorf("address: want empty, got %q", updated.Address)
	}
}

func TestUserService_Update_NameRequired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	for _, name := range []ports.UpdateUserInput{
		{Name: domain.Null[string]()},
		{Name: domain.Some("")},
		{Name: domain.Some("   ")},
	} {
		if _, err := svc.Update(context.Background(), caller, "u1", name); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation for blank name, got %v", err)
		}
	}

	// A failed merge must not persist anything.
	stored, _ := repo.FindByID(context.Background(), "u1")
	if stored.Name != "Jane" {
		t.Errorf("failed update must not persist, name is %q", stored.Name)
	}
}

func TestUserService_Update_TrimsText(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	updated, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		Name:     domain.Some("  Janet  "),
		LastName: domain.Some("  Smith "),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Janet" || updated.LastName != "Smith" {
		t.Errorf("expected trimmed values, got %q %q", updated.Name, updated.LastName)
	}
}

func TestUserService_Update_HashAndEmailUntouched(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seeded := seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	if _, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		Name: domain.Some("Janet"),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := repo.users["u1"]
	if stored.PasswordHash != seeded.PasswordHash {
		t.Error("profile update must never touch the credential hash")
	}
	if stored.Email != seeded.Email {
		t.Errorf("profile update must not change the email, got %q", stored.Email)
	}
}

// ---------------------------------------------------------------------------
// Update: authorization and roles
// ---------------------------------------------------------------------------

func TestUserService_Update_NotFoundBeatsAuthorization(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	_, err := svc.Update(context.Background(), caller, "missing", ports.UpdateUserInput{
		Name: domain.Some("X"),
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_OtherUserDenied(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	stranger := domain.Caller{ID: "u2", Role: domain.RoleUser}

	_, err := svc.Update(context.Background(), stranger, "u1", ports.UpdateUserInput{
		Name: domain.Some("X"),
	})
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUserService_Update_AdminChangesRole(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := newTestUserService(repo, audit)
	seedUser(repo, "u1", domain.RoleUser)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	updated, err := svc.Update(context.Background(), admin, "u1", ports.UpdateUserInput{
		Role: domain.Some(domain.RoleCasting),
	})
	if err != nil {
		t.Fatalf("role change failed: %v", err)
	}
	if updated.Role != domain.RoleCasting {
		t.Errorf("role: want %q, got %q", domain.RoleCasting, updated.Role)
	}

	actions := audit.actions()
	if len(actions) != 2 || actions[0] != domain.AuditRoleChanged || actions[1] != domain.AuditProfileUpdated {
		t.Errorf("expected role-changed then profile-updated audit events, got %v", actions)
	}
}

func TestUserService_Update_NonAdminCannotChangeRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	// Even on their own record.
	_, err := svc.Update(context.Background(), caller, "u1", ports.UpdateUserInput{
		Role: domain.Some(domain.RoleAdmin),
	})
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.users["u1"].Role != domain.RoleUser {
		t.Error("denied role change must not persist")
	}
}

func TestUserService_Update_AdminCannotChangeOwnRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "a1", domain.RoleAdmin)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	_, err := svc.Update(context.Background(), admin, "a1", ports.UpdateUserInput{
		Role: domain.Some(domain.RoleUser),
	})
	if !errors.Is(err, domain.ErrSelfRoleChange) {
		t.Fatalf("expected ErrSelfRoleChange, got %v", err)
	}
}

func TestUserService_Update_InvalidRoleRejected(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	_, err := svc.Update(context.Background(), admin, "u1", ports.UpdateUserInput{
		Role: domain.Some("superuser"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_Update_SameRoleNoRoleAudit(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := newTestUserService(repo, audit)
	seedUser(repo, "u1", domain.RoleUser)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	_, err := svc.Update(context.Background(), admin, "u1", ports.UpdateUserInput{
		Role: domain.Some(domain.RoleUser),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	for _, a := range audit.actions() {
		if a == domain.AuditRoleChanged {
			t.Error("no-op role set must not record a role-changed event")
		}
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestUserService_Delete_AdminDeletesOther(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := newTestUserService(repo, audit)
	seedUser(repo, "u1", domain.RoleUser)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.users["u1"]; ok {
		t.Error("user must be removed from the store")
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditUserDeleted {
		t.Errorf("expected a user-deleted audit event, got %v", audit.actions())
	}
}

func TestUserService_Delete_AdminCannotDeleteSelf(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "a1", domain.RoleAdmin)
	admin := domain.Caller{ID: "a1", Role: domain.RoleAdmin}

	if err := svc.Delete(context.Background(), admin, "a1"); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if _, ok := repo.users["a1"]; !ok {
		t.Error("denied delete must not remove the record")
	}
}

func TestUserService_Delete_NonAdminDenied(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	seedUser(repo, "u1", domain.RoleUser)
	seedUser(repo, "u2", domain.RoleUser)

	caller := domain.Caller{ID: "u2", Role: domain.RoleUser}
	if err := svc.Delete(context.Background(), caller, "u1"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUserService_Delete_NotFoundBeatsAuthorization(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, &stubAudit{})
	caller := domain.Caller{ID: "u1", Role: domain.RoleUser}

	if err := svc.Delete(context.Background(), caller, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
