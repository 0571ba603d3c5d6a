package postgres_test

import (
	"context"
	"database/sql"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func countRecipesNamed(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM recipes WHERE name = $1`, name)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func txRecipe(author domain.User, name string) domain.Recipe {
	return domain.Recipe{
		Author:      author,
		Name:        name,
		Text:        "Cook " + name,
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		CookingTime: 5,
	}
}

func TestPgSQL_Begin_AlreadyInTx(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pgSQL.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.ErrorIs(t, pgSQL.Commit(), storage.ErrNotInTx)

	txStorage, err := pgSQL.Begin(ctx)
	require.NoError(t, err)

	user, err := txStorage.StoreUser(ctx, domain.User{
		Email:     "committed@example.com",
		Username:  "committed",
		FirstName: "Committed",
		LastName:  "User",
	})
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	got, err := pgSQL.UserByID(ctx, domain.UserID{}, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "committed", got.Username)
}

func TestPgSQL_Rollback(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.ErrorIs(t, pgSQL.Rollback(), storage.ErrNotInTx)

	txStorage, err := pgSQL.Begin(ctx)
	require.NoError(t, err)

	user, err := txStorage.StoreUser(ctx, domain.User{
		Email:     "discarded@example.com",
		Username:  "discarded",
		FirstName: "Discarded",
		LastName:  "User",
	})
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	got, err := pgSQL.UserByID(ctx, domain.UserID{}, user.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_RecipeWrites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	db := pgSQL.DB.(*sql.DB)

	author := createUser(t, pgSQL, "cook")
	ingredients := createIngredients(t, pgSQL, domain.Ingredient{Name: "rice", MeasurementUnit: "g"})
	tags := createTags(t, pgSQL, "lunch")

	t.Run("commits recipe with its ingredients and tags", func(t *testing.T) {
		var id domain.RecipeID
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			if id, err = s.StoreRecipe(ctx, txRecipe(author, "Risotto")); err != nil {
				return err //nolint: wrapcheck
			}
			if err := s.SetRecipeIngredients(ctx, id, []domain.RecipeIngredient{
				{Ingredient: ingredients[0], Amount: 300},
			}); err != nil {
				return err //nolint: wrapcheck
			}

			return s.SetRecipeTags(ctx, id, []domain.TagID{tags[0].ID}) //nolint: wrapcheck
		})
		require.NoError(t, err)

		recipe, err := pgSQL.RecipeByID(ctx, domain.UserID{}, id)
		require.NoError(t, err)
		require.NotNil(t, recipe)
		require.Len(t, recipe.Ingredients, 1)
		require.Equal(t, 300, recipe.Ingredients[0].Amount)
		require.Equal(t, tags, recipe.Tags)
	})

	t.Run("unknown ingredient rolls back the recipe row", func(t *testing.T) {
		var id domain.RecipeID
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			if id, err = s.StoreRecipe(ctx, txRecipe(author, "Ghost soup")); err != nil {
				return err //nolint: wrapcheck
			}

			return s.SetRecipeIngredients(ctx, id, []domain.RecipeIngredient{ //nolint: wrapcheck
				{Ingredient: domain.Ingredient{ID: ingredients[0].ID + 100000}, Amount: 1},
			})
		})
		require.ErrorIs(t, err, storage.ErrReferenced)
		require.NotZero(t, id)

		recipe, err := pgSQL.RecipeByID(ctx, domain.UserID{}, id)
		require.NoError(t, err)
		require.Nil(t, recipe)
		require.Zero(t, countRecipesNamed(t, db, "Ghost soup"))
	})
}
