package domain

import "time"

// RecipeID identifies a recipe.
type RecipeID int64

// RecipeIngredient is an ingredient used by a recipe in a given amount.
type RecipeIngredient struct {
	Ingredient Ingredient
	Amount     int
}

// Recipe is a user-authored recipe.
type Recipe struct {
	ID     RecipeID
	Author User

	Name        string
	Text        string
	Image       string
	CookingTime int

	Ingredients []RecipeIngredient
	Tags        []Tag

	// IsFavorited and IsInShoppingCart are relative to the viewing user.
	IsFavorited      bool
	IsInShoppingCart bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Collection names a per-user set of recipes.
type Collection string

const (
	// CollectionFavorites holds the recipes a user marked as favorite.
	CollectionFavorites Collection = "favorites"
	// CollectionShoppingCart holds the recipes whose ingredients a user wants to buy.
	CollectionShoppingCart Collection = "shopping_cart"
)

// ShoppingListItem is the total amount of one ingredient over every recipe in
// a shopping cart.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}
