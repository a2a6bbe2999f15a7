package domain

import "time"

const (
	RoleUser    = "user"
	RoleCasting = "casting"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the enumerated account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleCasting || role == RoleAdmin
}

// MinPasswordLength is the minimum accepted plaintext credential length.
const MinPasswordLength = 6

// User models an account in the marketplace. The password hash is never
// serialized outward; callers receive the remaining fields as-is.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	LastName     string     `json:"lastName"`
	DOB          *time.Time `json:"dob"`
	Age          *int       `json:"age"`
	Address      string     `json:"address"`
	PhoneNumber  string     `json:"phoneNumber"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	ProfilePhoto *string    `json:"profilePhoto"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
