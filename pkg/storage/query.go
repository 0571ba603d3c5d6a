package storage

import (
	"foodgram/pkg/domain"
)

// Page selects a window of an ordered result set.
type Page struct {
	Offset uint
	Limit  uint
}

// IngredientFilter narrows ingredient listings. Empty fields are ignored.
type IngredientFilter struct {
	// NamePrefix is matched case-insensitively against the start of the name.
	NamePrefix string
	// MeasurementUnit must match exactly.
	MeasurementUnit string
}

// RecipeFilter narrows recipe listings. Zero values are ignored.
type RecipeFilter struct {
	// TagSlugs keeps recipes having at least one of the tags.
	TagSlugs []string
	// AuthorID keeps recipes written by the author.
	AuthorID *domain.UserID
	// FavoritedBy keeps recipes in the user's favorites.
	FavoritedBy *domain.UserID
	// InShoppingCartOf keeps recipes in the user's shopping cart.
	InShoppingCartOf *domain.UserID
}

// RecipeUpdates describes the recipe columns to change. Nil fields are left untouched.
type RecipeUpdates struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
}

// RecipePage is a page of recipes and the total number of matching recipes.
type RecipePage struct {
	Recipes []domain.Recipe
	Count   int64
}

// UserPage is a page of users and the total number of matching users.
type UserPage struct {
	Users []domain.User
	Count int64
}

// AuthorRecipes holds recipe previews and totals keyed by author.
type AuthorRecipes struct {
	Recipes map[domain.UserID][]domain.Recipe
	Counts  map[domain.UserID]int
}
