package ports

import (
	"context"

	"github.com/recipebook/recipe-api/internal/core/domain"
)

// UserService defines account use cases.
type UserService interface {
	// Register hashes rawPassword and persists a new active user with the
	// default role. Uniqueness is checked by the caller; the store's unique
	// index acts as a backstop.
	Register(ctx context.Context, userName, rawPassword string) error
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	Exists(ctx context.Context, userName string) (bool, error)
	// Authenticate verifies the password against the stored hash.
	Authenticate(ctx context.Context, userName, password string) (*domain.User, error)
	// Login authenticates and issues a signed token for Bearer auth.
	Login(ctx context.Context, userName, password string) (string, *domain.User, error)
}
