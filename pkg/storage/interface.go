// Package storage defines the persistence interfaces of the service. It
// abstracts the catalog, recipe, collection and user tables and transaction
// management so that different backends (e.g. PostgreSQL) can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	TagStorage
	IngredientStorage
	RecipeStorage
	CollectionStorage
	UserStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits when cb
	// returns nil or rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// TagStorage reads and seeds the tag catalog.
type TagStorage interface {
	// Tags returns every tag ordered by id.
	Tags(ctx context.Context) ([]domain.Tag, error)
	// TagByID returns nil when the tag does not exist.
	TagByID(ctx context.Context, ID domain.TagID) (*domain.Tag, error)
	// TagsByIDs returns the existing tags among ids, in no particular order.
	TagsByIDs(ctx context.Context, IDs []domain.TagID) ([]domain.Tag, error)
	// StoreTags inserts tags, skipping those conflicting with an existing
	// name, color or slug, and returns the number of inserted rows.
	StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error)
}

// IngredientStorage reads and seeds the ingredient catalog.
type IngredientStorage interface {
	// Ingredients returns ingredients matching filter ordered by name.
	Ingredients(ctx context.Context, filter IngredientFilter) ([]domain.Ingredient, error)
	// IngredientByID returns nil when the ingredient does not exist.
	IngredientByID(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error)
	// IngredientsByIDs returns the existing ingredients among ids, in no particular order.
	IngredientsByIDs(ctx context.Context, IDs []domain.IngredientID) ([]domain.Ingredient, error)
	// StoreIngredients inserts ingredients, skipping existing (name, unit)
	// pairs, and returns the number of inserted rows.
	StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error)
}

// RecipeStorage manages recipes together with their ingredients and tags.
// Methods returning recipes hydrate author, ingredients, tags and the
// viewer-relative flags; a zero viewer means an anonymous caller.
type RecipeStorage interface {
	// StoreRecipe inserts the recipe row (without ingredients and tags) and
	// returns its id.
	StoreRecipe(ctx context.Context, recipe domain.Recipe) (domain.RecipeID, error)
	// UpdateRecipe applies updates to the recipe row. It returns false when
	// the recipe does not exist.
	UpdateRecipe(ctx context.Context, ID domain.RecipeID, updates RecipeUpdates) (bool, error)
	// SetRecipeIngredients replaces the ingredients of a recipe.
	SetRecipeIngredients(ctx context.Context, ID domain.RecipeID, ingredients []domain.RecipeIngredient) error
	// SetRecipeTags replaces the tags of a recipe.
	SetRecipeTags(ctx context.Context, ID domain.RecipeID, tagIDs []domain.TagID) error
	// DeleteRecipe removes a recipe and returns false when it did not exist.
	DeleteRecipe(ctx context.Context, ID domain.RecipeID) (bool, error)
	// RecipeAuthor returns the author of a recipe, or nil when the recipe does not exist.
	RecipeAuthor(ctx context.Context, ID domain.RecipeID) (*domain.UserID, error)
	// RecipeByID returns a hydrated recipe or nil when it does not exist.
	RecipeByID(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	// Recipes returns a page of hydrated recipes matching filter, newest first.
	Recipes(ctx context.Context, viewer domain.UserID, filter RecipeFilter, page Page) (RecipePage, error)
	// ShortRecipesByAuthors returns, for each author, its newest recipes
	// (at most limit per author when limit > 0) without ingredients, tags or
	// author details, and the total recipe count per author.
	ShortRecipesByAuthors(ctx context.Context, authorIDs []domain.UserID, limit uint) (AuthorRecipes, error)
}

// CollectionStorage manages per-user recipe collections (favorites and the
// shopping cart) and the aggregated shopping list.
type CollectionStorage interface {
	// AddToCollection adds a recipe to the user's collection. It returns
	// false when the recipe was already there.
	AddToCollection(ctx context.Context, collection domain.Collection, userID domain.UserID, ID domain.RecipeID) (bool, error)
	// RemoveFromCollection removes a recipe from the user's collection. It
	// returns false when the recipe was not there.
	RemoveFromCollection(ctx context.Context,
		collection domain.Collection,
		userID domain.UserID,
		ID domain.RecipeID) (bool, error)
	// ShoppingList sums ingredient amounts over every recipe in the user's
	// shopping cart, grouped by ingredient and ordered by ingredient name.
	ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingListItem, error)
}

// UserStorage manages users and subscriptions. IsSubscribed on returned users
// is relative to viewer.
type UserStorage interface {
	// StoreUser inserts a user and returns it as stored.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error)
	// Users returns a page of users ordered by username.
	Users(ctx context.Context, viewer domain.UserID, page Page) (UserPage, error)
	// Subscribe makes userID follow authorID. It returns false when already subscribed.
	Subscribe(ctx context.Context, userID, authorID domain.UserID) (bool, error)
	// Unsubscribe returns false when userID did not follow authorID.
	Unsubscribe(ctx context.Context, userID, authorID domain.UserID) (bool, error)
	// Subscriptions returns a page of the authors userID follows, most recent first.
	Subscriptions(ctx context.Context, userID domain.UserID, page Page) (UserPage, error)
}
