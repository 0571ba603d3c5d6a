package postgres_test

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_RecipeLifecycle(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := createUser(t, pgSQL, "author")
	viewer := createUser(t, pgSQL, "viewer")
	ingredients := createIngredients(t, pgSQL,
		domain.Ingredient{Name: "flour", MeasurementUnit: "g"},
		domain.Ingredient{Name: "egg", MeasurementUnit: "pcs"},
	)
	tags := createTags(t, pgSQL, "breakfast", "dinner")

	id := createRecipe(t, pgSQL, author, "Pancakes", []domain.RecipeIngredient{
		{Ingredient: ingredients[0], Amount: 200},
		{Ingredient: ingredients[1], Amount: 2},
	}, tags[:1])

	t.Run("get hydrated", func(t *testing.T) {
		recipe, err := pgSQL.RecipeByID(ctx, viewer.ID, id)
		require.NoError(t, err)
		require.NotNil(t, recipe)
		require.Equal(t, "Pancakes", recipe.Name)
		require.Equal(t, author.ID, recipe.Author.ID)
		require.Equal(t, "author", recipe.Author.Username)
		require.False(t, recipe.Author.IsSubscribed)
		require.Len(t, recipe.Ingredients, 2)
		// ordered by ingredient name
		require.Equal(t, "egg", recipe.Ingredients[0].Ingredient.Name)
		require.Equal(t, 2, recipe.Ingredients[0].Amount)
		require.Equal(t, tags[:1], recipe.Tags)
		require.False(t, recipe.IsFavorited)
		require.False(t, recipe.IsInShoppingCart)
		require.True(t, recipe.UpdatedAt.IsZero())
	})

	t.Run("author", func(t *testing.T) {
		got, err := pgSQL.RecipeAuthor(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, author.ID, *got)

		missing, err := pgSQL.RecipeAuthor(ctx, id+1000)
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("update replaces ingredients and tags", func(t *testing.T) {
		name := "Crepes"
		ok, err := pgSQL.UpdateRecipe(ctx, id, storage.RecipeUpdates{Name: &name})
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, pgSQL.SetRecipeIngredients(ctx, id, []domain.RecipeIngredient{
			{Ingredient: ingredients[0], Amount: 150},
		}))
		require.NoError(t, pgSQL.SetRecipeTags(ctx, id, []domain.TagID{tags[1].ID}))

		recipe, err := pgSQL.RecipeByID(ctx, domain.UserID{}, id)
		require.NoError(t, err)
		require.NotNil(t, recipe)
		require.Equal(t, "Crepes", recipe.Name)
		require.Equal(t, "Cook Pancakes", recipe.Text)
		require.Len(t, recipe.Ingredients, 1)
		require.Equal(t, 150, recipe.Ingredients[0].Amount)
		require.Equal(t, []domain.Tag{tags[1]}, recipe.Tags)
		require.False(t, recipe.UpdatedAt.IsZero())

		ok, err = pgSQL.UpdateRecipe(ctx, id+1000, storage.RecipeUpdates{Name: &name})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("unknown ingredient is referenced error", func(t *testing.T) {
		err := pgSQL.SetRecipeIngredients(ctx, id, []domain.RecipeIngredient{
			{Ingredient: domain.Ingredient{ID: ingredients[1].ID + 1000}, Amount: 1},
		})
		require.ErrorIs(t, err, storage.ErrReferenced)
	})

	t.Run("delete", func(t *testing.T) {
		other := createRecipe(t, pgSQL, author, "Toast", nil, nil)

		ok, err := pgSQL.DeleteRecipe(ctx, other)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = pgSQL.DeleteRecipe(ctx, other)
		require.NoError(t, err)
		require.False(t, ok)

		recipe, err := pgSQL.RecipeByID(ctx, viewer.ID, other)
		require.NoError(t, err)
		require.Nil(t, recipe)
	})
}

func TestPgSQL_Recipes(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")
	tags := createTags(t, pgSQL, "breakfast", "lunch", "dinner")

	r1 := createRecipe(t, pgSQL, alice, "Omelette", nil, tags[:1])
	r2 := createRecipe(t, pgSQL, alice, "Soup", nil, tags[1:2])
	r3 := createRecipe(t, pgSQL, bob, "Steak", nil, tags[1:3])

	_, err := pgSQL.AddToCollection(ctx, domain.CollectionFavorites, bob.ID, r1)
	require.NoError(t, err)
	_, err = pgSQL.AddToCollection(ctx, domain.CollectionShoppingCart, bob.ID, r2)
	require.NoError(t, err)

	ids := func(recipes []domain.Recipe) []domain.RecipeID {
		out := make([]domain.RecipeID, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.ID)
		}

		return out
	}

	t.Run("newest first", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, domain.UserID{}, storage.RecipeFilter{}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.EqualValues(t, 3, page.Count)
		require.Equal(t, []domain.RecipeID{r3, r2, r1}, ids(page.Recipes))
	})

	t.Run("paginated", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, domain.UserID{}, storage.RecipeFilter{}, storage.Page{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.EqualValues(t, 3, page.Count)
		require.Equal(t, []domain.RecipeID{r2}, ids(page.Recipes))
	})

	t.Run("any of tags", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, domain.UserID{}, storage.RecipeFilter{
			TagSlugs: []string{"breakfast", "dinner"},
		}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, page.Count)
		require.Equal(t, []domain.RecipeID{r3, r1}, ids(page.Recipes))
	})

	t.Run("unknown tag matches nothing", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, domain.UserID{}, storage.RecipeFilter{
			TagSlugs: []string{"brunch"},
		}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.Zero(t, page.Count)
		require.Empty(t, page.Recipes)
	})

	t.Run("author", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, domain.UserID{}, storage.RecipeFilter{AuthorID: &alice.ID}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.Equal(t, []domain.RecipeID{r2, r1}, ids(page.Recipes))
	})

	t.Run("favorites and cart flags", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, bob.ID, storage.RecipeFilter{FavoritedBy: &bob.ID}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.Equal(t, []domain.RecipeID{r1}, ids(page.Recipes))
		require.True(t, page.Recipes[0].IsFavorited)
		require.False(t, page.Recipes[0].IsInShoppingCart)

		page, err = pgSQL.Recipes(ctx, bob.ID, storage.RecipeFilter{InShoppingCartOf: &bob.ID}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.Equal(t, []domain.RecipeID{r2}, ids(page.Recipes))
		require.True(t, page.Recipes[0].IsInShoppingCart)
		require.False(t, page.Recipes[0].IsFavorited)
	})

	t.Run("combined filters", func(t *testing.T) {
		page, err := pgSQL.Recipes(ctx, bob.ID, storage.RecipeFilter{
			TagSlugs:    []string{"lunch"},
			FavoritedBy: &bob.ID,
		}, storage.Page{Limit: 10})
		require.NoError(t, err)
		require.Empty(t, page.Recipes)
	})

	t.Run("subscription flag on author", func(t *testing.T) {
		_, err := pgSQL.Subscribe(ctx, bob.ID, alice.ID)
		require.NoError(t, err)

		recipe, err := pgSQL.RecipeByID(ctx, bob.ID, r1)
		require.NoError(t, err)
		require.True(t, recipe.Author.IsSubscribed)

		recipe, err = pgSQL.RecipeByID(ctx, domain.UserID{}, r1)
		require.NoError(t, err)
		require.False(t, recipe.Author.IsSubscribed)
		require.False(t, recipe.IsFavorited)
	})
}

func TestPgSQL_ShortRecipesByAuthors(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")
	carol := createUser(t, pgSQL, "carol")

	a1 := createRecipe(t, pgSQL, alice, "A1", nil, nil)
	a2 := createRecipe(t, pgSQL, alice, "A2", nil, nil)
	a3 := createRecipe(t, pgSQL, alice, "A3", nil, nil)
	b1 := createRecipe(t, pgSQL, bob, "B1", nil, nil)

	t.Run("limited", func(t *testing.T) {
		res, err := pgSQL.ShortRecipesByAuthors(ctx, []domain.UserID{alice.ID, bob.ID, carol.ID}, 2)
		require.NoError(t, err)
		require.Len(t, res.Recipes[alice.ID], 2)
		require.Equal(t, a3, res.Recipes[alice.ID][0].ID)
		require.Equal(t, a2, res.Recipes[alice.ID][1].ID)
		require.Len(t, res.Recipes[bob.ID], 1)
		require.Equal(t, b1, res.Recipes[bob.ID][0].ID)
		require.Empty(t, res.Recipes[carol.ID])
		require.Equal(t, 3, res.Counts[alice.ID])
		require.Equal(t, 1, res.Counts[bob.ID])
		require.Equal(t, 0, res.Counts[carol.ID])
	})

	t.Run("unlimited", func(t *testing.T) {
		res, err := pgSQL.ShortRecipesByAuthors(ctx, []domain.UserID{alice.ID}, 0)
		require.NoError(t, err)
		require.Len(t, res.Recipes[alice.ID], 3)
		require.Equal(t, a1, res.Recipes[alice.ID][2].ID)
	})

	t.Run("no authors", func(t *testing.T) {
		res, err := pgSQL.ShortRecipesByAuthors(ctx, nil, 3)
		require.NoError(t, err)
		require.Empty(t, res.Recipes)
	})
}
