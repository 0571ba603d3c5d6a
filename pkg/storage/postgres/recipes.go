package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	recipesTable           = "recipes"
	recipeIngredientsTable = "recipe_ingredients"
	recipeTagsTable        = "recipe_tags"
)

// recipeColumns selects the PgRecipe columns from recipes aliased as "r".
func recipeColumns() []interface{} {
	return []interface{}{
		goqu.I("r.id").As("id"),
		goqu.I("r.author_id").As("author_id"),
		goqu.I("r.name").As("name"),
		goqu.I("r.text").As("text"),
		goqu.I("r.image").As("image"),
		goqu.I("r.cooking_time").As("cooking_time"),
		goqu.I("r.created_at").As("created_at"),
		goqu.I("r.updated_at").As("updated_at"),
	}
}

func (p *PgSQL) StoreRecipe(ctx context.Context, recipe domain.Recipe) (domain.RecipeID, error) {
	var row PgRecipe
	row.FromDomain(recipe)

	var id int64
	found, err := p.Builder.Insert(recipesTable).
		Rows(row).
		Returning(goqu.C("id")).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return 0, fmt.Errorf("could not store recipe into pg: %w", translateError(err))
	}
	if !found {
		return 0, fmt.Errorf("could not store recipe into pg: no id returned")
	}

	return domain.RecipeID(id), nil
}

// UpdateRecipe sets the provided columns and updated_at.
func (p *PgSQL) UpdateRecipe(ctx context.Context, id domain.RecipeID, updates storage.RecipeUpdates) (bool, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Text != nil {
		rec["text"] = *updates.Text
	}
	if updates.Image != nil {
		rec["image"] = *updates.Image
	}
	if updates.CookingTime != nil {
		rec["cooking_time"] = *updates.CookingTime
	}

	res, err := p.Builder.Update(recipesTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update recipe in pg: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (p *PgSQL) SetRecipeIngredients(ctx context.Context,
	id domain.RecipeID,
	ingredients []domain.RecipeIngredient) error {
	if _, err := p.Builder.Delete(recipeIngredientsTable).
		Where(goqu.I("recipe_id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear recipe ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(ingredients))
	for _, ri := range ingredients {
		rows = append(rows, goqu.Record{
			"recipe_id":     int64(id),
			"ingredient_id": int64(ri.Ingredient.ID),
			"amount":        ri.Amount,
		})
	}
	if _, err := p.Builder.Insert(recipeIngredientsTable).
		Rows(rows...).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store recipe ingredients: %w", translateError(err))
	}

	return nil
}

func (p *PgSQL) SetRecipeTags(ctx context.Context, id domain.RecipeID, tagIDs []domain.TagID) error {
	if _, err := p.Builder.Delete(recipeTagsTable).
		Where(goqu.I("recipe_id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear recipe tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, goqu.Record{
			"recipe_id": int64(id),
			"tag_id":    int64(tagID),
		})
	}
	if _, err := p.Builder.Insert(recipeTagsTable).
		Rows(rows...).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store recipe tags: %w", translateError(err))
	}

	return nil
}

// DeleteRecipe removes the recipe; ingredients, tags, favorites and cart
// entries are removed by cascading foreign keys.
func (p *PgSQL) DeleteRecipe(ctx context.Context, id domain.RecipeID) (bool, error) {
	res, err := p.Builder.Delete(recipesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete recipe in pg: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (p *PgSQL) RecipeAuthor(ctx context.Context, id domain.RecipeID) (*domain.UserID, error) {
	var authorID uuid.UUID
	found, err := p.Builder.From(recipesTable).
		Select(goqu.C("author_id")).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanValContext(ctx, &authorID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe author: %w", err)
	}
	if !found {
		return nil, nil
	}

	userID := domain.UserID(authorID)

	return &userID, nil
}

func (p *PgSQL) RecipeByID(ctx context.Context, viewer domain.UserID, id domain.RecipeID) (*domain.Recipe, error) {
	var row PgRecipe
	found, err := p.Builder.From(goqu.T(recipesTable).As("r")).
		Select(recipeColumns()...).
		Where(goqu.I("r.id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	recipes, err := p.hydrateRecipes(ctx, viewer, []PgRecipe{row})
	if err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

func recipeFilterExpressions(filter storage.RecipeFilter) []goqu.Expression {
	var w []goqu.Expression
	if len(filter.TagSlugs) > 0 {
		w = append(w, goqu.I("r.id").In(
			dialect.From(goqu.T(recipeTagsTable).As("rt")).
				Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
				Where(goqu.I("t.slug").In(filter.TagSlugs)).
				Select(goqu.I("rt.recipe_id")),
		))
	}
	if filter.AuthorID != nil {
		w = append(w, goqu.I("r.author_id").Eq(uuid.UUID(*filter.AuthorID)))
	}
	if filter.FavoritedBy != nil {
		w = append(w, goqu.I("r.id").In(
			dialect.From(favoritesTable).
				Where(goqu.I("user_id").Eq(uuid.UUID(*filter.FavoritedBy))).
				Select(goqu.I("recipe_id")),
		))
	}
	if filter.InShoppingCartOf != nil {
		w = append(w, goqu.I("r.id").In(
			dialect.From(shoppingCartTable).
				Where(goqu.I("user_id").Eq(uuid.UUID(*filter.InShoppingCartOf))).
				Select(goqu.I("recipe_id")),
		))
	}

	return w
}

// Recipes returns matching recipes ordered newest first and the total count.
func (p *PgSQL) Recipes(ctx context.Context,
	viewer domain.UserID,
	filter storage.RecipeFilter,
	page storage.Page) (storage.RecipePage, error) {
	ds := p.Builder.From(goqu.T(recipesTable).As("r")).
		Where(recipeFilterExpressions(filter)...)

	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.RecipePage{}, fmt.Errorf("could not count recipes: %w", err)
	}

	var rows []PgRecipe
	if err := ds.Select(recipeColumns()...).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Offset(page.Offset).
		Limit(page.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.RecipePage{}, fmt.Errorf("could not fetch recipes from pg: %w", err)
	}

	recipes, err := p.hydrateRecipes(ctx, viewer, rows)
	if err != nil {
		return storage.RecipePage{}, err
	}

	return storage.RecipePage{
		Recipes: recipes,
		Count:   count,
	}, nil
}

// ShortRecipesByAuthors ranks recipes per author with ROW_NUMBER so that a
// single query returns at most limit recipes per author.
func (p *PgSQL) ShortRecipesByAuthors(ctx context.Context,
	authorIDs []domain.UserID,
	limit uint) (storage.AuthorRecipes, error) {
	out := storage.AuthorRecipes{
		Recipes: make(map[domain.UserID][]domain.Recipe, len(authorIDs)),
		Counts:  make(map[domain.UserID]int, len(authorIDs)),
	}
	if len(authorIDs) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(authorIDs))
	for i, id := range authorIDs {
		ids[i] = uuid.UUID(id)
	}

	ranked := dialect.From(goqu.T(recipesTable).As("r")).
		Select(append(recipeColumns(),
			goqu.ROW_NUMBER().Over(goqu.W().
				PartitionBy(goqu.I("r.author_id")).
				OrderBy(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())).As("rn"),
		)...).
		Where(goqu.I("r.author_id").In(ids))

	ds := p.Builder.From(ranked.As("ranked")).
		Select(
			goqu.C("id"), goqu.C("author_id"), goqu.C("name"), goqu.C("text"), goqu.C("image"),
			goqu.C("cooking_time"), goqu.C("created_at"), goqu.C("updated_at"),
		).
		Order(goqu.C("author_id").Asc(), goqu.C("rn").Asc())
	if limit > 0 {
		ds = ds.Where(goqu.C("rn").Lte(limit))
	}

	var rows []PgRecipe
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return out, fmt.Errorf("could not fetch recipes by authors: %w", err)
	}
	for i := range rows {
		r := rows[i].ToDomain()
		out.Recipes[r.Author.ID] = append(out.Recipes[r.Author.ID], r)
	}

	var counts []struct {
		AuthorID uuid.UUID `db:"author_id"`
		Count    int       `db:"count"`
	}
	if err := p.Builder.From(recipesTable).
		Select(goqu.C("author_id"), goqu.COUNT(goqu.Star()).As("count")).
		Where(goqu.C("author_id").In(ids)).
		GroupBy(goqu.C("author_id")).
		Executor().ScanStructsContext(ctx, &counts); err != nil {
		return out, fmt.Errorf("could not count recipes by authors: %w", err)
	}
	for _, c := range counts {
		out.Counts[domain.UserID(c.AuthorID)] = c.Count
	}

	return out, nil
}

// hydrateRecipes converts rows to domain recipes and fills authors,
// ingredients, tags and the viewer flags with one query each.
func (p *PgSQL) hydrateRecipes(ctx context.Context, viewer domain.UserID, rows []PgRecipe) ([]domain.Recipe, error) {
	if len(rows) == 0 {
		return []domain.Recipe{}, nil
	}

	recipeIDs := make([]int64, 0, len(rows))
	authorSet := make(map[uuid.UUID]struct{}, len(rows))
	authorIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		recipeIDs = append(recipeIDs, r.ID)
		if _, ok := authorSet[r.AuthorID]; !ok {
			authorSet[r.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	var authors []PgUserView
	if err := p.Builder.From(goqu.T(usersTable).As("u")).
		Select(userColumns(viewer)...).
		Where(goqu.I("u.id").In(authorIDs)).
		Executor().ScanStructsContext(ctx, &authors); err != nil {
		return nil, fmt.Errorf("could not fetch recipe authors: %w", err)
	}
	authorsByID := make(map[uuid.UUID]domain.User, len(authors))
	for i := range authors {
		authorsByID[authors[i].ID] = authors[i].ToDomain()
	}

	var ingredients []PgRecipeIngredient
	if err := p.Builder.From(goqu.T(recipeIngredientsTable).As("ri")).
		Join(goqu.T(ingredientsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(
			goqu.I("ri.recipe_id").As("recipe_id"),
			goqu.I("i.id").As("ingredient_id"),
			goqu.I("i.name").As("name"),
			goqu.I("i.measurement_unit").As("measurement_unit"),
			goqu.I("ri.amount").As("amount"),
		).
		Where(goqu.I("ri.recipe_id").In(recipeIDs)).
		Order(goqu.I("i.name").Asc(), goqu.I("i.id").Asc()).
		Executor().ScanStructsContext(ctx, &ingredients); err != nil {
		return nil, fmt.Errorf("could not fetch recipe ingredients: %w", err)
	}
	ingredientsByRecipe := make(map[int64][]domain.RecipeIngredient, len(rows))
	for i := range ingredients {
		ingredientsByRecipe[ingredients[i].RecipeID] = append(ingredientsByRecipe[ingredients[i].RecipeID],
			ingredients[i].ToDomain())
	}

	var tags []PgRecipeTag
	if err := p.Builder.From(goqu.T(recipeTagsTable).As("rt")).
		Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
		Select(
			goqu.I("rt.recipe_id").As("recipe_id"),
			goqu.I("t.id").As("id"),
			goqu.I("t.name").As("name"),
			goqu.I("t.color").As("color"),
			goqu.I("t.slug").As("slug"),
		).
		Where(goqu.I("rt.recipe_id").In(recipeIDs)).
		Order(goqu.I("t.id").Asc()).
		Executor().ScanStructsContext(ctx, &tags); err != nil {
		return nil, fmt.Errorf("could not fetch recipe tags: %w", err)
	}
	tagsByRecipe := make(map[int64][]domain.Tag, len(rows))
	for i := range tags {
		tagsByRecipe[tags[i].RecipeID] = append(tagsByRecipe[tags[i].RecipeID], tags[i].ToDomain())
	}

	favorited, err := p.collectionMembers(ctx, favoritesTable, viewer, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := p.collectionMembers(ctx, shoppingCartTable, viewer, recipeIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recipe, 0, len(rows))
	for i := range rows {
		r := rows[i].ToDomain()
		if author, ok := authorsByID[rows[i].AuthorID]; ok {
			r.Author = author
		}
		r.Ingredients = ingredientsByRecipe[rows[i].ID]
		r.Tags = tagsByRecipe[rows[i].ID]
		_, r.IsFavorited = favorited[rows[i].ID]
		_, r.IsInShoppingCart = inCart[rows[i].ID]
		out = append(out, r)
	}

	return out, nil
}

// collectionMembers returns which of recipeIDs belong to the viewer's
// collection table. Anonymous viewers own no collections.
func (p *PgSQL) collectionMembers(ctx context.Context,
	table string,
	viewer domain.UserID,
	recipeIDs []int64) (map[int64]struct{}, error) {
	out := map[int64]struct{}{}
	if viewer.IsZero() {
		return out, nil
	}

	var ids []int64
	if err := p.Builder.From(table).
		Select(goqu.C("recipe_id")).
		Where(
			goqu.C("user_id").Eq(uuid.UUID(viewer)),
			goqu.C("recipe_id").In(recipeIDs),
		).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch %s members: %w", table, err)
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out, nil
}
