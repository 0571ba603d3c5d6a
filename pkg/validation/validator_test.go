package validation_test

import (
	"foodgram/pkg/serrors"
	"foodgram/pkg/validation"
	"testing"

	"github.com/stretchr/testify/require"
)

type testIngredient struct {
	ID     int64 `json:"id"     validate:"required"`
	Amount int   `json:"amount" validate:"min=1"`
}

type testRecipe struct {
	Name        string           `json:"name"         validate:"required,max=10"`
	Image       string           `json:"image"        validate:"required,imagedata"`
	Color       string           `json:"color"        validate:"omitempty,hexcolor"`
	CookingTime int              `json:"cooking_time" validate:"min=1"`
	Tags        []int64          `json:"tags"         validate:"min=1,unique"`
	Ingredients []testIngredient `json:"ingredients"  validate:"min=1,unique=ID,dive"`
}

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func validRecipe() testRecipe {
	return testRecipe{
		Name:        "Soup",
		Image:       pixel,
		Color:       "#49B64E",
		CookingTime: 5,
		Tags:        []int64{1, 2},
		Ingredients: []testIngredient{{ID: 1, Amount: 1}, {ID: 2, Amount: 3}},
	}
}

func fieldsOf(t *testing.T, err error) serrors.Fields {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	var sErr *serrors.Error
	require.ErrorAs(t, err, &sErr)

	return sErr.Fields()
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	require.NotNil(t, validation.GetValidator())
	require.Same(t, validation.GetValidator(), validation.GetValidator())
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validation.Struct(validRecipe()))
	})

	t.Run("json names", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Name = ""
		r.CookingTime = 0

		fields := fieldsOf(t, validation.Struct(r))
		require.Equal(t, []string{"this field is required"}, fields["name"])
		require.Equal(t, []string{"ensure this value is greater than or equal to 1"}, fields["cooking_time"])
	})

	t.Run("string length", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Name = "a very long recipe name"

		fields := fieldsOf(t, validation.Struct(r))
		require.Equal(t, []string{"ensure this field has no more than 10 characters"}, fields["name"])
	})

	t.Run("nested paths", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Ingredients[1].Amount = 0

		fields := fieldsOf(t, validation.Struct(r))
		require.Contains(t, fields, "ingredients[1].amount")
	})

	t.Run("repeated values", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Tags = []int64{1, 1}
		r.Ingredients = []testIngredient{{ID: 1, Amount: 1}, {ID: 1, Amount: 2}}

		fields := fieldsOf(t, validation.Struct(r))
		require.Equal(t, []string{"values must not repeat"}, fields["tags"])
		require.Equal(t, []string{"values must not repeat"}, fields["ingredients"])
	})

	t.Run("empty lists", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Tags = nil
		r.Ingredients = []testIngredient{}

		fields := fieldsOf(t, validation.Struct(r))
		require.Equal(t, []string{"ensure this list has at least 1 items"}, fields["tags"])
		require.Contains(t, fields, "ingredients")
	})

	t.Run("color", func(t *testing.T) {
		t.Parallel()

		r := validRecipe()
		r.Color = "green"

		fields := fieldsOf(t, validation.Struct(r))
		require.Contains(t, fields, "color")
	})
}

func TestIsImageData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"png", pixel, true},
		{"jpeg", "data:image/jpeg;base64,/9j/4AAQ", true},
		{"not an image", "data:text/plain;base64,aGVsbG8=", false},
		{"not base64", "data:image/png;base64,***", false},
		{"text payload", "data:image/png;base64,aGVsbG8gd29ybGQ=", false},
		{"gif declared as png", "data:image/png;base64,R0lGODlhAQABAAAAACw=", true},
		{"plain url", "https://example.com/image.png", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, validation.IsImageData(tt.input))
		})
	}
}

func TestStruct_Username(t *testing.T) {
	t.Parallel()

	type user struct {
		Username string `json:"username" validate:"required,username"`
	}

	require.NoError(t, validation.Struct(user{Username: "chef.john+1@home_-"}))

	fields := fieldsOf(t, validation.Struct(user{Username: "chef john"}))
	require.Equal(t, []string{"letters, digits and @/./+/-/_ only"}, fields["username"])
}
