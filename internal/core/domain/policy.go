package domain

import "fmt"

// Caller identifies the authenticated actor behind a request.
type Caller struct {
	ID   string
	Role string
}

// CanReadAll reports whether the caller may list every user record.
func CanReadAll(caller Caller) bool {
	return caller.Role == RoleAdmin
}

// CanModify reports whether the caller may mutate the target's record:
// owners may modify themselves, admins may modify anyone.
func CanModify(caller Caller, targetID string) bool {
	return caller.ID == targetID || caller.Role == RoleAdmin
}

// CanChangeRole decides whether the caller may set the target's role.
// Only admins may change roles, the requested role must be one of the
// enumerated values, and an admin may never change their own role.
func CanChangeRole(caller Caller, targetID, requestedRole string) error {
	if caller.Role != RoleAdmin {
		return ErrNotAuthorized
	}
	if !ValidRole(requestedRole) {
		return fmt.Errorf("%w: invalid role %q", ErrValidation, requestedRole)
	}
	if caller.ID == targetID {
		return ErrSelfRoleChange
	}
	return nil
}

// CanDelete decides whether the caller may delete the target account.
// Admin-only, and an admin may never delete their own account.
func CanDelete(caller Caller, targetID string) error {
	if caller.Role != RoleAdmin {
		return ErrNotAuthorized
	}
	if caller.ID == targetID {
		return ErrSelfDelete
	}
	return nil
}
