package recipes

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
)

//go:generate mockgen -package mockrecipes -source=interface.go -destination=mock/mockrecipes.go *
type Recipes interface {
	Create(ctx context.Context, authorID domain.UserID, input Input) (*domain.Recipe, error)
	Update(ctx context.Context, userID domain.UserID, ID domain.RecipeID, input Input) (*domain.Recipe, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error
	Get(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	List(ctx context.Context, viewer domain.UserID, filter Filter, page storage.Page) (storage.RecipePage, error)
	AddToCollection(ctx context.Context,
		collection domain.Collection,
		userID domain.UserID,
		ID domain.RecipeID) (*domain.Recipe, error)
	RemoveFromCollection(ctx context.Context, collection domain.Collection, userID domain.UserID, ID domain.RecipeID) error
	ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingListItem, error)
}
