package ports

import (
	"context"

	"github.com/Thanuja200/Resolve-now/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates a user account with role "user". Admin accounts are
	// provisioned out of band.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
