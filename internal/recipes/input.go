package recipes

import (
	"errors"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"foodgram/pkg/validation"
	"maps"
	"strings"
)

// IngredientAmount references a catalog ingredient used by a recipe.
type IngredientAmount struct {
	ID     domain.IngredientID `json:"id"     validate:"min=1"`
	Amount int                 `json:"amount" validate:"min=1,max=32000"`
}

// Input carries the writable recipe fields. Nil scalar fields keep their
// stored value on update and are required on create. Ingredients and tags
// are always required and replace the stored sets.
type Input struct {
	Name        *string            `json:"name"         validate:"omitnil,min=1,max=200"`
	Text        *string            `json:"text"         validate:"omitnil,min=1"`
	Image       *string            `json:"image"        validate:"omitnil,imagedata"`
	CookingTime *int               `json:"cooking_time" validate:"omitnil,min=1,max=32000"`
	Ingredients []IngredientAmount `json:"ingredients"  validate:"required,min=1,unique=ID,dive"`
	Tags        []domain.TagID     `json:"tags"         validate:"required,min=1,unique,dive,min=1"`
}

func (in *Input) normalize() {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		in.Text = &text
	}
}

// validate checks the shape of the input. Existence of referenced
// ingredients and tags is checked against storage separately.
func (in *Input) validate(create bool) error {
	fields := serrors.Fields{}
	if err := validation.Struct(in); err != nil {
		var sErr *serrors.Error
		if !errors.As(err, &sErr) || sErr.Fields().Empty() {
			return err
		}
		maps.Copy(fields, sErr.Fields())
	}

	if create {
		for field, missing := range map[string]bool{
			"name":         in.Name == nil,
			"text":         in.Text == nil,
			"image":        in.Image == nil,
			"cooking_time": in.CookingTime == nil,
		} {
			if missing {
				fields.Add(field, validation.MsgRequired)
			}
		}
	}

	if !fields.Empty() {
		return serrors.Invalid(fields)
	}

	return nil
}

func (in *Input) ingredientIDs() []domain.IngredientID {
	ids := make([]domain.IngredientID, 0, len(in.Ingredients))
	for _, i := range in.Ingredients {
		ids = append(ids, i.ID)
	}

	return ids
}

func (in *Input) recipeIngredients() []domain.RecipeIngredient {
	out := make([]domain.RecipeIngredient, 0, len(in.Ingredients))
	for _, i := range in.Ingredients {
		out = append(out, domain.RecipeIngredient{
			Ingredient: domain.Ingredient{ID: i.ID},
			Amount:     i.Amount,
		})
	}

	return out
}

// Filter narrows recipe listings.
type Filter struct {
	// Tags keeps recipes having any of the tag slugs.
	Tags []string
	// AuthorID keeps recipes of a single author.
	AuthorID *domain.UserID
	// IsFavorited keeps recipes the viewer favorited.
	IsFavorited bool
	// IsInShoppingCart keeps recipes in the viewer's shopping cart.
	IsInShoppingCart bool
}
