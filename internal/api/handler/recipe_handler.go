package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-api/internal/api/metrics"
	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipe operations. Every operation
// resolves the authenticated principal to a full user record first; single
// recipe operations then check existence before ownership.
type RecipeHandler struct {
	recipes ports.RecipeService
	users   ports.UserService
}

func NewRecipeHandler(recipes ports.RecipeService, users ports.UserService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, users: users}
}

// Create handles POST /api/recipe/new. The resolved caller is always attached
// as owner; any owner on the inbound payload is ignored.
func (h *RecipeHandler) Create(c echo.Context) error {
	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.Create(c.Request().Context(), toDraft(req), user.UserName)
	if err != nil {
		return err
	}

	metrics.RecipesCreatedTotal.Inc()
	return c.JSON(http.StatusOK, idResponse{ID: recipe.ID})
}

// Get handles GET /api/recipe/:id.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	user, err := h.principal(c)
	if err != nil {
		return err
	}
	if !recipe.OwnedBy(user.UserName) {
		metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrForbidden
	}

	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Update handles PUT /api/recipe/:id. The draft fully replaces the recipe's
// content; id and owner are preserved and the date is refreshed.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	recipe, err := h.recipes.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	user, err := h.principal(c)
	if err != nil {
		return err
	}
	if !recipe.OwnedBy(user.UserName) {
		metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrForbidden
	}

	if err := h.recipes.UpdateByID(c.Request().Context(), id, toDraft(req)); err != nil {
		return err
	}

	metrics.RecipesUpdatedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/recipe/:id.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	user, err := h.principal(c)
	if err != nil {
		return err
	}
	if !recipe.OwnedBy(user.UserName) {
		metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrForbidden
	}

	if err := h.recipes.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecipesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /api/recipe/search. Exactly one of the category or name
// query parameters must be present; results are always scoped to the caller's
// own recipes.
func (h *RecipeHandler) Search(c echo.Context) error {
	params := c.QueryParams()
	hasCategory := params.Has("category")
	hasName := params.Has("name")
	if hasCategory == hasName {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "exactly one of category or name must be given"})
	}

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	var recipes []*domain.Recipe
	if hasCategory {
		metrics.SearchesTotal.WithLabelValues("category").Inc()
		recipes, err = h.recipes.SearchByCategory(c.Request().Context(), params.Get("category"), user.UserName)
	} else {
		metrics.SearchesTotal.WithLabelValues("name").Inc()
		recipes, err = h.recipes.SearchByName(c.Request().Context(), params.Get("name"), user.UserName)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRecipeListResponse(recipes))
}

// principal resolves the authenticated username to the full user record.
func (h *RecipeHandler) principal(c echo.Context) (*domain.User, error) {
	userName, err := ctxPrincipal(c)
	if err != nil {
		return nil, err
	}
	return h.users.FindByUserName(c.Request().Context(), userName)
}

func recipeID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid recipe id")
	}
	return id, nil
}
