package v1handler

import (
	"foodgram/pkg/domain"
)

type Tag struct {
	ID    domain.TagID `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Slug  string       `json:"slug"`
}

type Ingredient struct {
	ID              domain.IngredientID `json:"id"`
	Name            string              `json:"name"`
	MeasurementUnit string              `json:"measurement_unit"`
}

type RecipeIngredient struct {
	Ingredient

	Amount int `json:"amount"`
}

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type Recipe struct {
	ID               domain.RecipeID    `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           User               `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
}

// ShortRecipe is the compact recipe shown in collections and subscriptions.
type ShortRecipe struct {
	ID          domain.RecipeID `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	CookingTime int             `json:"cooking_time"`
}

type Subscription struct {
	User

	Recipes      []ShortRecipe `json:"recipes"`
	RecipesCount int           `json:"recipes_count"`
}

func DomainTagToV1(in *domain.Tag) Tag {
	return Tag{ID: in.ID, Name: in.Name, Color: in.Color, Slug: in.Slug}
}

func DomainIngredientToV1(in *domain.Ingredient) Ingredient {
	return Ingredient{ID: in.ID, Name: in.Name, MeasurementUnit: in.MeasurementUnit}
}

func DomainUserToV1(in *domain.User) User {
	return User{
		ID:           in.ID.String(),
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsSubscribed: in.IsSubscribed,
	}
}

func DomainRecipeToV1(in *domain.Recipe) Recipe {
	tags := make([]Tag, 0, len(in.Tags))
	for i := range in.Tags {
		tags = append(tags, DomainTagToV1(&in.Tags[i]))
	}
	ingredients := make([]RecipeIngredient, 0, len(in.Ingredients))
	for i := range in.Ingredients {
		ingredients = append(ingredients, RecipeIngredient{
			Ingredient: DomainIngredientToV1(&in.Ingredients[i].Ingredient),
			Amount:     in.Ingredients[i].Amount,
		})
	}

	return Recipe{
		ID:               in.ID,
		Tags:             tags,
		Author:           DomainUserToV1(&in.Author),
		Ingredients:      ingredients,
		IsFavorited:      in.IsFavorited,
		IsInShoppingCart: in.IsInShoppingCart,
		Name:             in.Name,
		Image:            in.Image,
		Text:             in.Text,
		CookingTime:      in.CookingTime,
	}
}

func DomainShortRecipeToV1(in *domain.Recipe) ShortRecipe {
	return ShortRecipe{ID: in.ID, Name: in.Name, Image: in.Image, CookingTime: in.CookingTime}
}

func DomainSubscriptionToV1(in *domain.Subscription) Subscription {
	recipes := make([]ShortRecipe, 0, len(in.Recipes))
	for i := range in.Recipes {
		recipes = append(recipes, DomainShortRecipeToV1(&in.Recipes[i]))
	}

	return Subscription{
		User:         DomainUserToV1(&in.Author),
		Recipes:      recipes,
		RecipesCount: in.RecipesCount,
	}
}

// mapSlice converts every element of in with fn.
func mapSlice[In, Out any](in []In, fn func(*In) Out) []Out {
	out := make([]Out, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}

	return out
}
