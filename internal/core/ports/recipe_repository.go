package ports

import (
	"context"

	"github.com/recipebook/recipe-api/internal/core/domain"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// Create persists a new recipe, assigning its id and stamping Date.
	Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	FindByID(ctx context.Context, id int) (*domain.Recipe, error)
	// Update overwrites the stored recipe's replaceable fields and refreshes
	// Date. Returns domain.ErrRecipeNotFound when id is absent.
	Update(ctx context.Context, recipe *domain.Recipe) error
	// Delete removes the recipe. Returns domain.ErrRecipeNotFound when id is
	// absent.
	Delete(ctx context.Context, id int) error
	// FindByCategoryAndOwner matches the category exactly, ignoring case,
	// scoped to the owner's recipes, newest first.
	FindByCategoryAndOwner(ctx context.Context, category, owner string) ([]*domain.Recipe, error)
	// FindByNameAndOwner matches recipes whose name contains the given
	// substring, ignoring case, scoped to the owner's recipes, newest first.
	FindByNameAndOwner(ctx context.Context, name, owner string) ([]*domain.Recipe, error)
}
