package domain

import (
	"errors"
	"testing"
)

func TestCanReadAll(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleCasting, false},
		{RoleUser, false},
		{"", false},
	}
	for _, tc := range cases {
		if got := CanReadAll(Caller{ID: "u1", Role: tc.role}); got != tc.want {
			t.Errorf("CanReadAll(role=%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestCanModify(t *testing.T) {
	cases := []struct {
		name     string
		caller   Caller
		targetID string
		want     bool
	}{
		{"owner modifies self", Caller{ID: "u1", Role: RoleUser}, "u1", true},
		{"owner cannot modify other", Caller{ID: "u1", Role: RoleUser}, "u2", false},
		{"casting cannot modify other", Caller{ID: "c1", Role: RoleCasting}, "u2", false},
		{"admin modifies anyone", Caller{ID: "a1", Role: RoleAdmin}, "u2", true},
		{"admin modifies self", Caller{ID: "a1", Role: RoleAdmin}, "a1", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanModify(tc.caller, tc.targetID); got != tc.want {
				t.Errorf("CanModify(%+v, %q) = %v, want %v", tc.caller, tc.targetID, got, tc.want)
			}
		})
	}
}

func TestCanChangeRole(t *testing.T) {
	cases := []struct {
		name      string
		caller    Caller
		targetID  string
		requested string
		wantErr   error
	}{
		{"admin promotes other", Caller{ID: "a1", Role: RoleAdmin}, "u2", RoleCasting, nil},
		{"admin demotes other", Caller{ID: "a1", Role: RoleAdmin}, "u2", RoleUser, nil},
		{"admin cannot change own role", Caller{ID: "a1", Role: RoleAdmin}, "a1", RoleUser, ErrSelfRoleChange},
		{"user cannot change role", Caller{ID: "u1", Role: RoleUser}, "u2", RoleAdmin, ErrNotAuthorized},
		{"user cannot change own role", Caller{ID: "u1", Role: RoleUser}, "u1", RoleAdmin, ErrNotAuthorized},
		{"casting cannot change role", Caller{ID: "c1", Role: RoleCasting}, "u2", RoleUser, ErrNotAuthorized},
		{"invalid role rejected", Caller{ID: "a1", Role: RoleAdmin}, "u2", "superuser", ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanChangeRole(tc.caller, tc.targetID, tc.requested)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	cases := []struct {
		name     string
		caller   Caller
		targetID string
		wantErr  error
	}{
		{"admin deletes other", Caller{ID: "a1", Role: RoleAdmin}, "u2", nil},
		{"admin cannot delete self", Caller{ID: "a1", Role: RoleAdmin}, "a1", ErrSelfDelete},
		{"user cannot delete", Caller{ID: "u1", Role: RoleUser}, "u2", ErrNotAuthorized},
		{"user cannot delete self", Caller{ID: "u1", Role: RoleUser}, "u1", ErrNotAuthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanDelete(tc.caller, tc.targetID)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleCasting, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "Admin", "superuser", "USER"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}
