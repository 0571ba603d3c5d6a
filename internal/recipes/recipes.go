// Package recipes implements recipe authoring, the favorites and shopping
// cart collections and the aggregated shopping list.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const meterName = "foodgram/internal/recipes"

var collectionNames = map[domain.Collection]string{
	domain.CollectionFavorites:    "favorites",
	domain.CollectionShoppingCart: "shopping cart",
}

type recipes struct {
	storage storage.Storage

	created       metric.Int64Counter
	deleted       metric.Int64Counter
	collected     metric.Int64Counter
	shoppingLists metric.Int64Counter
}

func (r recipes) Create(ctx context.Context, authorID domain.UserID, input Input) (*domain.Recipe, error) {
	if authorID.IsZero() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	input.normalize()
	if err := input.validate(true); err != nil {
		return nil, err
	}

	var id domain.RecipeID
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := checkReferences(ctx, tx, input); err != nil {
			return err
		}

		var err error
		id, err = tx.StoreRecipe(ctx, domain.Recipe{
			Author:      domain.User{ID: authorID},
			Name:        *input.Name,
			Text:        *input.Text,
			Image:       *input.Image,
			CookingTime: *input.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("could not store recipe: %w", err)
		}

		return setRelations(ctx, tx, id, input)
	}); err != nil {
		return nil, fmt.Errorf("could not create recipe: %w", err)
	}

	r.created.Add(ctx, 1)
	logger.Debug(ctx, "recipe created", zap.Int64("recipe_id", int64(id)))

	return r.Get(ctx, authorID, id)
}

func (r recipes) Update(ctx context.Context,
	userID domain.UserID,
	id domain.RecipeID,
	input Input) (*domain.Recipe, error) {
	if userID.IsZero() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	input.normalize()
	if err := input.validate(false); err != nil {
		return nil, err
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := checkAuthor(ctx, tx, userID, id); err != nil {
			return err
		}
		if err := checkReferences(ctx, tx, input); err != nil {
			return err
		}

		if _, err := tx.UpdateRecipe(ctx, id, storage.RecipeUpdates{
			Name:        input.Name,
			Text:        input.Text,
			Image:       input.Image,
			CookingTime: input.CookingTime,
		}); err != nil {
			return fmt.Errorf("could not update recipe: %w", err)
		}

		return setRelations(ctx, tx, id, input)
	}); err != nil {
		return nil, fmt.Errorf("could not update recipe: %w", err)
	}

	return r.Get(ctx, userID, id)
}

func (r recipes) Delete(ctx context.Context, userID domain.UserID, id domain.RecipeID) error {
	if userID.IsZero() {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := checkAuthor(ctx, tx, userID, id); err != nil {
			return err
		}

		deleted, err := tx.DeleteRecipe(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete recipe: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "recipe not found")
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete recipe: %w", err)
	}

	r.deleted.Add(ctx, 1)

	return nil
}

func (r recipes) Get(ctx context.Context, viewer domain.UserID, id domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := r.storage.RecipeByID(ctx, viewer, id)
	if err != nil {
		return nil, fmt.Errorf("could not get recipe: %w", err)
	}
	if recipe == nil {
		return nil, serrors.With(serrors.ErrNotFound, "recipe not found")
	}

	return recipe, nil
}

// List returns a page of recipes. Collection filters match nothing for
// anonymous viewers.
func (r recipes) List(ctx context.Context,
	viewer domain.UserID,
	filter Filter,
	page storage.Page) (storage.RecipePage, error) {
	if (filter.IsFavorited || filter.IsInShoppingCart) && viewer.IsZero() {
		return storage.RecipePage{Recipes: []domain.Recipe{}}, nil
	}

	sf := storage.RecipeFilter{
		TagSlugs: filter.Tags,
		AuthorID: filter.AuthorID,
	}
	if filter.IsFavorited {
		sf.FavoritedBy = &viewer
	}
	if filter.IsInShoppingCart {
		sf.InShoppingCartOf = &viewer
	}

	res, err := r.storage.Recipes(ctx, viewer, sf, page)
	if err != nil {
		return storage.RecipePage{}, fmt.Errorf("could not list recipes: %w", err)
	}

	return res, nil
}

// AddToCollection adds the recipe to the user's collection and returns it.
// Adding a recipe twice is a bad request.
func (r recipes) AddToCollection(ctx context.Context,
	collection domain.Collection,
	userID domain.UserID,
	id domain.RecipeID) (*domain.Recipe, error) {
	name, err := collectionName(collection)
	if err != nil {
		return nil, err
	}
	if userID.IsZero() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	recipe, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	added, err := r.storage.AddToCollection(ctx, collection, userID, id)
	switch {
	case errors.Is(err, storage.ErrReferenced):
		return nil, serrors.With(serrors.ErrNotFound, "recipe not found")
	case err != nil:
		return nil, fmt.Errorf("could not add recipe to %s: %w", name, err)
	case !added:
		return nil, serrors.With(serrors.ErrBadRequest, "recipe is already in %s", name)
	}

	switch collection {
	case domain.CollectionFavorites:
		recipe.IsFavorited = true
	case domain.CollectionShoppingCart:
		recipe.IsInShoppingCart = true
	}
	r.collected.Add(ctx, 1, metric.WithAttributes(attribute.String("collection", string(collection))))

	return recipe, nil
}

// RemoveFromCollection removes the recipe from the user's collection.
// Removing a recipe that is not in the collection is a bad request.
func (r recipes) RemoveFromCollection(ctx context.Context,
	collection domain.Collection,
	userID domain.UserID,
	id domain.RecipeID) error {
	name, err := collectionName(collection)
	if err != nil {
		return err
	}
	if userID.IsZero() {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	removed, err := r.storage.RemoveFromCollection(ctx, collection, userID, id)
	if err != nil {
		return fmt.Errorf("could not remove recipe from %s: %w", name, err)
	}
	if removed {
		return nil
	}

	author, err := r.storage.RecipeAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get recipe: %w", err)
	}
	if author == nil {
		return serrors.With(serrors.ErrNotFound, "recipe not found")
	}

	return serrors.With(serrors.ErrBadRequest, "recipe is not in %s", name)
}

// ShoppingList aggregates the ingredients of every recipe in the user's cart.
func (r recipes) ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingListItem, error) {
	if userID.IsZero() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	items, err := r.storage.ShoppingList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not build shopping list: %w", err)
	}
	r.shoppingLists.Add(ctx, 1)

	return items, nil
}

func collectionName(collection domain.Collection) (string, error) {
	name, ok := collectionNames[collection]
	if !ok {
		return "", serrors.With(serrors.ErrBadRequest, "unknown collection %q", collection)
	}

	return name, nil
}

// checkAuthor returns NOT_FOUND for missing recipes and FORBIDDEN when
// userID is not the author.
func checkAuthor(ctx context.Context, tx storage.AllStorage, userID domain.UserID, id domain.RecipeID) error {
	author, err := tx.RecipeAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get recipe author: %w", err)
	}
	if author == nil {
		return serrors.With(serrors.ErrNotFound, "recipe not found")
	}
	if *author != userID {
		return serrors.With(serrors.ErrForbidden, "only the author can change a recipe")
	}

	return nil
}

// checkReferences reports unknown ingredient and tag ids as field errors.
func checkReferences(ctx context.Context, tx storage.AllStorage, input Input) error {
	fields := serrors.Fields{}

	ingredients, err := tx.IngredientsByIDs(ctx, input.ingredientIDs())
	if err != nil {
		return fmt.Errorf("could not get ingredients: %w", err)
	}
	known := make(map[domain.IngredientID]struct{}, len(ingredients))
	for _, i := range ingredients {
		known[i.ID] = struct{}{}
	}
	for _, i := range input.Ingredients {
		if _, ok := known[i.ID]; !ok {
			fields.Add("ingredients", fmt.Sprintf("ingredient %d does not exist", i.ID))
		}
	}

	tags, err := tx.TagsByIDs(ctx, input.Tags)
	if err != nil {
		return fmt.Errorf("could not get tags: %w", err)
	}
	knownTags := make(map[domain.TagID]struct{}, len(tags))
	for _, t := range tags {
		knownTags[t.ID] = struct{}{}
	}
	for _, id := range input.Tags {
		if _, ok := knownTags[id]; !ok {
			fields.Add("tags", fmt.Sprintf("tag %d does not exist", id))
		}
	}

	if !fields.Empty() {
		return serrors.Invalid(fields)
	}

	return nil
}

func setRelations(ctx context.Context, tx storage.AllStorage, id domain.RecipeID, input Input) error {
	if err := tx.SetRecipeIngredients(ctx, id, input.recipeIngredients()); err != nil {
		return fmt.Errorf("could not set recipe ingredients: %w", err)
	}
	if err := tx.SetRecipeTags(ctx, id, input.Tags); err != nil {
		return fmt.Errorf("could not set recipe tags: %w", err)
	}

	return nil
}

// New creates a Recipes service. A nil meter falls back to the global meter provider.
func New(storage storage.Storage, meter metric.Meter) (Recipes, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	r := &recipes{storage: storage}
	var err error
	if r.created, err = meter.Int64Counter("foodgram.recipes.created",
		metric.WithDescription("Number of created recipes")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.deleted, err = meter.Int64Counter("foodgram.recipes.deleted",
		metric.WithDescription("Number of deleted recipes")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.collected, err = meter.Int64Counter("foodgram.recipes.collected",
		metric.WithDescription("Number of recipes added to favorites or shopping carts")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.shoppingLists, err = meter.Int64Counter("foodgram.shopping_lists.built",
		metric.WithDescription("Number of built shopping lists")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}

	return r, nil
}
