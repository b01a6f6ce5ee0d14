package user

import (
	"fmt"
	"time"
)

// Role is the account role claimed by a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// User represents a user in the system
type User struct {
	ID        string    `json:"id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	AvatarURL *string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Role      Role      `json:"role" validate:"required,enum"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}
