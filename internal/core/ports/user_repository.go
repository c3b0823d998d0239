package ports

import (
	"context"

	"github.com/recipebook/recipe-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user and returns it with the assigned id.
	// A username collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	Exists(ctx context.Context, userName string) (bool, error)
}
