package postgres_test

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, pgSQL *postgres.PgSQL, username string) domain.User {
	t.Helper()

	user, err := pgSQL.StoreUser(context.Background(), domain.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "First " + username,
		LastName:  "Last " + username,
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	return *user
}

func createIngredients(t *testing.T, pgSQL *postgres.PgSQL, ingredients ...domain.Ingredient) []domain.Ingredient {
	t.Helper()
	ctx := context.Background()

	_, err := pgSQL.StoreIngredients(ctx, ingredients...)
	require.NoError(t, err)

	all, err := pgSQL.Ingredients(ctx, storage.IngredientFilter{})
	require.NoError(t, err)

	out := make([]domain.Ingredient, 0, len(ingredients))
	for _, want := range ingredients {
		for _, got := range all {
			if got.Name == want.Name && got.MeasurementUnit == want.MeasurementUnit {
				out = append(out, got)
			}
		}
	}
	require.Len(t, out, len(ingredients))

	return out
}

func createTags(t *testing.T, pgSQL *postgres.PgSQL, slugs ...string) []domain.Tag {
	t.Helper()
	ctx := context.Background()

	tags := make([]domain.Tag, 0, len(slugs))
	for i, slug := range slugs {
		tags = append(tags, domain.Tag{
			Name:  "Tag " + slug,
			Color: fmt.Sprintf("#%06X", i+1),
			Slug:  slug,
		})
	}
	_, err := pgSQL.StoreTags(ctx, tags...)
	require.NoError(t, err)

	all, err := pgSQL.Tags(ctx)
	require.NoError(t, err)

	out := make([]domain.Tag, 0, len(slugs))
	for _, slug := range slugs {
		for _, tag := range all {
			if tag.Slug == slug {
				out = append(out, tag)
			}
		}
	}
	require.Len(t, out, len(slugs))

	return out
}

func createRecipe(t *testing.T,
	pgSQL *postgres.PgSQL,
	author domain.User,
	name string,
	ingredients []domain.RecipeIngredient,
	tags []domain.Tag) domain.RecipeID {
	t.Helper()
	ctx := context.Background()

	id, err := pgSQL.StoreRecipe(ctx, domain.Recipe{
		Author:      author,
		Name:        name,
		Text:        "Cook " + name,
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		CookingTime: 10,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, pgSQL.SetRecipeIngredients(ctx, id, ingredients))

	tagIDs := make([]domain.TagID, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
	}
	require.NoError(t, pgSQL.SetRecipeTags(ctx, id, tagIDs))

	return id
}

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
