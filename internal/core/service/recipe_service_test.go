package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

// stubRecipeRepo mirrors the Mongo repository's semantics: ids come from a
// sequence and every create or update stamps a strictly increasing date.
type stubRecipeRepo struct {
	byID      map[int]*domain.Recipe
	nextID    int
	clock     time.Time
	createErr error
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{
		byID:  make(map[int]*domain.Recipe),
		clock: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *stubRecipeRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *stubRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *recipe
	clone.ID = r.nextID
	clone.Date = r.tick()
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id int) (*domain.Recipe, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, recipe *domain.Recipe) error {
	stored, ok := r.byID[recipe.ID]
	if !ok {
		return domain.ErrRecipeNotFound
	}
	stored.Name = recipe.Name
	stored.Category = recipe.Category
	stored.Description = recipe.Description
	stored.Ingredients = recipe.Ingredients
	stored.Directions = recipe.Directions
	stored.Date = r.tick()
	return nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubRecipeRepo) FindByCategoryAndOwner(_ context.Context, category, owner string) ([]*domain.Recipe, error) {
	var out []*domain.Recipe
	for _, rec := range r.byID {
		if rec.Owner == owner && strings.EqualFold(rec.Category, category) {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *stubRecipeRepo) FindByNameAndOwner(_ context.Context, name, owner string) ([]*domain.Recipe, error) {
	var out []*domain.Recipe
	for _, rec := range r.byID {
		if rec.Owner == owner && strings.Contains(strings.ToLower(rec.Name), strings.ToLower(name)) {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func sortByDateDesc(recipes []*domain.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Date.After(recipes[j].Date)
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func soupDraft() ports.RecipeDraft {
	return ports.RecipeDraft{
		Name:        "Soup",
		Category:    "Dinner",
		Description: "warm",
		Ingredients: []string{"water"},
		Directions:  []string{"boil"},
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRecipeService_Create_AssignsIDAndOwner(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)

	created, err := svc.Create(context.Background(), soupDraft(), "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("id must be assigned by the store")
	}
	if created.Date.IsZero() {
		t.Error("date must be stamped by the store")
	}
	if created.Owner != "alice@x.com" {
		t.Errorf("expected owner %q, got %q", "alice@x.com", created.Owner)
	}

	found, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find after create failed: %v", err)
	}
	if found.Name != "Soup" || found.Category != "Dinner" || found.Description != "warm" {
		t.Errorf("draft fields not preserved: %+v", found)
	}
	if len(found.Ingredients) != 1 || found.Ingredients[0] != "water" {
		t.Errorf("ingredients not preserved: %v", found.Ingredients)
	}
	if len(found.Directions) != 1 || found.Directions[0] != "boil" {
		t.Errorf("directions not preserved: %v", found.Directions)
	}
}

func TestRecipeService_Create_RepoError(t *testing.T) {
	repo := newStubRecipeRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewRecipeService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), soupDraft(), "alice@x.com"); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Find / Delete tests
// ---------------------------------------------------------------------------

func TestRecipeService_FindByID_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	if _, err := svc.FindByID(context.Background(), 42); err != domain.ErrRecipeNotFound {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRecipeService_DeleteByID(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), soupDraft(), "alice@x.com")

	if err := svc.DeleteByID(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.FindByID(context.Background(), created.ID); err != domain.ErrRecipeNotFound {
		t.Fatalf("expected ErrRecipeNotFound after delete, got %v", err)
	}
}

func TestRecipeService_DeleteByID_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	if err := svc.DeleteByID(context.Background(), 9); err != domain.ErrRecipeNotFound {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestRecipeService_UpdateByID_ReplacesFieldsPreservesIdentity(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), soupDraft(), "alice@x.com")
	previous := created.Date

	update := ports.RecipeDraft{
		Name:        "Stew",
		Category:    "Lunch",
		Description: "thick",
		Ingredients: []string{"beef", "carrot"},
		Directions:  []string{"chop", "simmer"},
	}
	if err := svc.UpdateByID(context.Background(), created.ID, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, _ := svc.FindByID(context.Background(), created.ID)
	if found.Name != "Stew" || found.Category != "Lunch" || found.Description != "thick" {
		t.Errorf("updated fields not reflected: %+v", found)
	}
	if len(found.Ingredients) != 2 || len(found.Directions) != 2 {
		t.Errorf("updated lists not reflected: %v %v", found.Ingredients, found.Directions)
	}
	if found.ID != created.ID {
		t.Errorf("id must be preserved: got %d, want %d", found.ID, created.ID)
	}
	if found.Owner != "alice@x.com" {
		t.Errorf("owner must be preserved: got %q", found.Owner)
	}
	if found.Date.Before(previous) {
		t.Errorf("date must not move backwards: %v < %v", found.Date, previous)
	}
}

func TestRecipeService_UpdateByID_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	if err := svc.UpdateByID(context.Background(), 7, soupDraft()); err != domain.ErrRecipeNotFound {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Search tests
// ---------------------------------------------------------------------------

func TestRecipeService_SearchByCategory_CaseInsensitiveOwnerScoped(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)
	ctx := context.Background()

	cake := soupDraft()
	cake.Name = "Cake"
	cake.Category = "Dessert"
	pie := soupDraft()
	pie.Name = "Pie"
	pie.Category = "DESSERT"
	bobsCake := soupDraft()
	bobsCake.Name = "Bob's Cake"
	bobsCake.Category = "dessert"

	_, _ = svc.Create(ctx, cake, "alice@x.com")
	_, _ = svc.Create(ctx, pie, "alice@x.com")
	_, _ = svc.Create(ctx, bobsCake, "bob@x.com")
	_, _ = svc.Create(ctx, soupDraft(), "alice@x.com")

	results, err := svc.SearchByCategory(ctx, "dessert", "alice@x.com")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Newest first: Pie was created after Cake.
	if results[0].Name != "Pie" || results[1].Name != "Cake" {
		t.Errorf("results not sorted newest first: %s, %s", results[0].Name, results[1].Name)
	}
	for _, r := range results {
		if r.Owner != "alice@x.com" {
			t.Errorf("search leaked another owner's recipe: %+v", r)
		}
	}
}

func TestRecipeService_SearchByName_SubstringMatch(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)
	ctx := context.Background()

	chicken := soupDraft()
	chicken.Name = "Chicken Soup"
	noodle := soupDraft()
	noodle.Name = "NOODLE SOUP"
	salad := soupDraft()
	salad.Name = "Salad"

	_, _ = svc.Create(ctx, chicken, "alice@x.com")
	_, _ = svc.Create(ctx, noodle, "alice@x.com")
	_, _ = svc.Create(ctx, salad, "alice@x.com")

	results, err := svc.SearchByName(ctx, "soup", "alice@x.com")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "NOODLE SOUP" || results[1].Name != "Chicken Soup" {
		t.Errorf("unexpected order: %s, %s", results[0].Name, results[1].Name)
	}
}

func TestRecipeService_Search_EmptyResultIsNotAnError(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	results, err := svc.SearchByCategory(context.Background(), "Dessert", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
