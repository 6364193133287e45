package domain

import "time"

// Role is the closed set of account roles. Anything outside this set is
// treated as non-admin by the policy layer.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string against the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the resolved caller attached to a request after token
// verification: who they are plus the denormalized name/email snapshot that
// gets copied onto complaints at creation time.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}
