package ports

import (
	"context"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the email
	// is already registered (matched case-insensitively).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks up a user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
