package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recipebook/recipe-api/internal/core/domain"
)

const recipesCollection = "recipes"

type RecipeRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{db: db, col: db.Collection(recipesCollection)}
}

type mongoRecipe struct {
	ID          int       `bson:"_id"`
	Name        string    `bson:"name"`
	Category    string    `bson:"category"`
	Description string    `bson:"description"`
	Ingredients []string  `bson:"ingredients"`
	Directions  []string  `bson:"directions"`
	Date        time.Time `bson:"date"`
	Owner       string    `bson:"owner"`
}

func (m mongoRecipe) toDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		Ingredients: m.Ingredients,
		Directions:  m.Directions,
		Date:        m.Date.UTC(),
		Owner:       m.Owner,
	}
}

// Create inserts a new recipe with a sequence-assigned integer id and stamps
// its date.
func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, recipesCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoRecipe{
		ID:          id,
		Name:        recipe.Name,
		Category:    recipe.Category,
		Description: recipe.Description,
		Ingredients: recipe.Ingredients,
		Directions:  recipe.Directions,
		Date:        now,
		Owner:       recipe.Owner,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	created := *recipe
	created.ID = id
	created.Date = now
	return &created, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id int) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRecipe
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return m.toDomain(), nil
}

// Update overwrites the replaceable fields and refreshes the date. The id and
// owner stored in the document are left untouched.
func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": recipe.ID},
		bson.M{"$set": bson.M{
			"name":        recipe.Name,
			"category":    recipe.Category,
			"description": recipe.Description,
			"ingredients": recipe.Ingredients,
			"directions":  recipe.Directions,
			"date":        time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// FindByCategoryAndOwner matches the category exactly, ignoring case, within
// the owner's recipes, newest first.
func (r *RecipeRepository) FindByCategoryAndOwner(ctx context.Context, category, owner string) ([]*domain.Recipe, error) {
	filter := bson.M{
		"owner":    owner,
		"category": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(category) + "$", Options: "i"},
	}
	return r.findSorted(ctx, filter)
}

// FindByNameAndOwner matches recipes whose name contains the substring,
// ignoring case, within the owner's recipes, newest first.
func (r *RecipeRepository) FindByNameAndOwner(ctx context.Context, name, owner string) ([]*domain.Recipe, error) {
	filter := bson.M{
		"owner": owner,
		"name":  primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	}
	return r.findSorted(ctx, filter)
}

func (r *RecipeRepository) findSorted(ctx context.Context, filter bson.M) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cur.Close(ctx)

	recipes := make([]*domain.Recipe, 0)
	for cur.Next(ctx) {
		var m mongoRecipe
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		recipes = append(recipes, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// EnsureIndexes creates the indexes used by the owner-scoped searches.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
