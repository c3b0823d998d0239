package handler

import (
	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// --- Request → Service input ---

func toDraft(req recipeRequest) ports.RecipeDraft {
	return ports.RecipeDraft{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Directions:  req.Directions,
	}
}

// --- Service result → HTTP response ---

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Date:        r.Date.UTC(),
		Description: r.Description,
		Ingredients: r.Ingredients,
		Directions:  r.Directions,
	}
}

func toRecipeListResponse(recipes []*domain.Recipe) []recipeResponse {
	out := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = toRecipeResponse(r)
	}
	return out
}
