package ports

import (
	"context"

	"github.com/recipebook/recipe-api/internal/core/domain"
)

// RecipeDraft is the inbound recipe payload prior to persistence. No id, date,
// or owner is ever trusted from input.
type RecipeDraft struct {
	Name        string
	Category    string
	Description string
	Ingredients []string
	Directions  []string
}

// RecipeService defines recipe use cases. Ownership authorization is the
// transport layer's responsibility; the service only scopes searches.
type RecipeService interface {
	FindByID(ctx context.Context, id int) (*domain.Recipe, error)
	// Create persists a fresh recipe built from the draft, owned by owner.
	// The returned recipe carries the assigned id and date.
	Create(ctx context.Context, draft RecipeDraft, owner string) (*domain.Recipe, error)
	DeleteByID(ctx context.Context, id int) error
	// UpdateByID replaces the draft fields on the stored recipe, preserving
	// id and owner. Date is refreshed by the store.
	UpdateByID(ctx context.Context, id int, draft RecipeDraft) error
	SearchByCategory(ctx context.Context, category, owner string) ([]*domain.Recipe, error)
	SearchByName(ctx context.Context, name, owner string) ([]*domain.Recipe, error)
}
