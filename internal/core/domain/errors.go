package domain

import "errors"

var (
	// ErrValidation marks malformed or missing request data (400).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotAuthorized  = errors.New("not authorized")
	ErrSelfRoleChange = errors.New("cannot modify your own role")
	ErrSelfDelete     = errors.New("cannot delete your own account")

	ErrUserNotFound    = errors.New("user not found")
	ErrCastingNotFound = errors.New("casting call not found")

	ErrEmailTaken        = errors.New("email already registered")
	ErrAlreadyRegistered = errors.New("already registered for this casting call")
)
