package postgres

import (
	"database/sql"
	"foodgram/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgTag struct {
	ID    int64  `db:"id"    goqu:"skipinsert"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Slug  string `db:"slug"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:    domain.TagID(p.ID),
		Name:  p.Name,
		Color: p.Color,
		Slug:  p.Slug,
	}
}

func (p *PgTag) FromDomain(tag domain.Tag) {
	*p = PgTag{
		ID:    int64(tag.ID),
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

type PgIngredient struct {
	ID              int64  `db:"id"               goqu:"skipinsert"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
}

func (p *PgIngredient) ToDomain() domain.Ingredient {
	return domain.Ingredient{
		ID:              domain.IngredientID(p.ID),
		Name:            p.Name,
		MeasurementUnit: p.MeasurementUnit,
	}
}

func (p *PgIngredient) FromDomain(ingredient domain.Ingredient) {
	*p = PgIngredient{
		ID:              int64(ingredient.ID),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

type PgUser struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:        uuid.UUID(user.ID),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

// PgUserView is a user row as seen by a viewer.
type PgUserView struct {
	PgUser

	IsSubscribed bool `db:"is_subscribed"`
}

func (p *PgUserView) ToDomain() domain.User {
	return domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		IsSubscribed: p.IsSubscribed,
		CreatedAt:    p.CreatedAt,
	}
}

type PgRecipe struct {
	ID          int64        `db:"id"           goqu:"skipinsert"`
	AuthorID    uuid.UUID    `db:"author_id"`
	Name        string       `db:"name"`
	Text        string       `db:"text"`
	Image       string       `db:"image"`
	CookingTime int          `db:"cooking_time"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgRecipe) FromDomain(recipe domain.Recipe) {
	*p = PgRecipe{
		ID:          int64(recipe.ID),
		AuthorID:    uuid.UUID(recipe.Author.ID),
		Name:        recipe.Name,
		Text:        recipe.Text,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  recipe.UpdatedAt,
			Valid: !recipe.UpdatedAt.IsZero(),
		},
	}
}

// ToDomain converts the row only; author details, ingredients, tags and flags
// are filled by hydration.
func (p *PgRecipe) ToDomain() domain.Recipe {
	return domain.Recipe{
		ID:          domain.RecipeID(p.ID),
		Author:      domain.User{ID: domain.UserID(p.AuthorID)},
		Name:        p.Name,
		Text:        p.Text,
		Image:       p.Image,
		CookingTime: p.CookingTime,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

type PgRecipeIngredient struct {
	RecipeID        int64  `db:"recipe_id"`
	IngredientID    int64  `db:"ingredient_id"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int    `db:"amount"`
}

func (p *PgRecipeIngredient) ToDomain() domain.RecipeIngredient {
	return domain.RecipeIngredient{
		Ingredient: domain.Ingredient{
			ID:              domain.IngredientID(p.IngredientID),
			Name:            p.Name,
			MeasurementUnit: p.MeasurementUnit,
		},
		Amount: p.Amount,
	}
}

type PgRecipeTag struct {
	RecipeID int64 `db:"recipe_id"`
	PgTag
}

type PgShoppingListItem struct {
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int64  `db:"amount"`
}

func pgTagsToDomain(rows []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func pgIngredientsToDomain(rows []PgIngredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func pgUsersToDomain(rows []PgUserView) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
