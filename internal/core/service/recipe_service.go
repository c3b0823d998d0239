package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// RecipeService implements recipe CRUD and the two owner-scoped searches.
type RecipeService struct {
	repo   ports.RecipeRepository
	logger zerolog.Logger
}

func NewRecipeService(repo ports.RecipeRepository, logger zerolog.Logger) *RecipeService {
	return &RecipeService{repo: repo, logger: logger}
}

func (s *RecipeService) FindByID(ctx context.Context, id int) (*domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

// Create builds a fresh recipe from the draft and owner. Only the five draft
// fields are taken from input; id and date are assigned by the store.
func (s *RecipeService) Create(ctx context.Context, draft ports.RecipeDraft, owner string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		Name:        draft.Name,
		Category:    draft.Category,
		Description: draft.Description,
		Ingredients: draft.Ingredients,
		Directions:  draft.Directions,
		Owner:       owner,
	}

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create recipe")
		return nil, err
	}

	s.logger.Info().Int("id", created.ID).Str("owner", owner).Msg("recipe created")
	return created, nil
}

func (s *RecipeService) DeleteByID(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("id", id).Msg("recipe deleted")
	return nil
}

// UpdateByID overwrites the draft fields on the stored recipe. Id and owner
// are preserved; the store refreshes the date as part of the write.
func (s *RecipeService) UpdateByID(ctx context.Context, id int, draft ports.RecipeDraft) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Name = draft.Name
	existing.Category = draft.Category
	existing.Description = draft.Description
	existing.Ingredients = draft.Ingredients
	existing.Directions = draft.Directions

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("failed to update recipe")
		return err
	}

	s.logger.Info().Int("id", id).Msg("recipe updated")
	return nil
}

func (s *RecipeService) SearchByCategory(ctx context.Context, category, owner string) ([]*domain.Recipe, error) {
	return s.repo.FindByCategoryAndOwner(ctx, category, owner)
}

func (s *RecipeService) SearchByName(ctx context.Context, name, owner string) ([]*domain.Recipe, error) {
	return s.repo.FindByNameAndOwner(ctx, name, owner)
}
