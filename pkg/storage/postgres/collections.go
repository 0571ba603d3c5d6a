package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable    = "favorites"
	shoppingCartTable = "shopping_cart"
)

var collectionTables = map[domain.Collection]string{
	domain.CollectionFavorites:    favoritesTable,
	domain.CollectionShoppingCart: shoppingCartTable,
}

func collectionTable(collection domain.Collection) (string, error) {
	table, ok := collectionTables[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}

	return table, nil
}

// AddToCollection reports false when the recipe was already in the collection.
func (p *PgSQL) AddToCollection(ctx context.Context,
	collection domain.Collection,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := collectionTable(collection)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Insert(table).
		Rows(goqu.Record{
			"user_id":   uuid.UUID(userID),
			"recipe_id": int64(recipeID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not add recipe to %s: %w", table, translateError(err))
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// RemoveFromCollection reports false when the recipe was not in the collection.
func (p *PgSQL) RemoveFromCollection(ctx context.Context,
	collection domain.Collection,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := collectionTable(collection)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Delete(table).
		Where(
			goqu.C("user_id").Eq(uuid.UUID(userID)),
			goqu.C("recipe_id").Eq(int64(recipeID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not remove recipe from %s: %w", table, err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// ShoppingList sums ingredient amounts over every recipe in the user's cart,
// grouping by ingredient, ordered by name and unit.
func (p *PgSQL) ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingListItem, error) {
	var rows []PgShoppingListItem
	if err := p.Builder.From(goqu.T(shoppingCartTable).As("sc")).
		Join(goqu.T(recipeIngredientsTable).As("ri"), goqu.On(goqu.I("ri.recipe_id").Eq(goqu.I("sc.recipe_id")))).
		Join(goqu.T(ingredientsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(
			goqu.I("i.name").As("name"),
			goqu.I("i.measurement_unit").As("measurement_unit"),
			goqu.SUM(goqu.I("ri.amount")).As("amount"),
		).
		Where(goqu.I("sc.user_id").Eq(uuid.UUID(userID))).
		GroupBy(goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.measurement_unit")).
		Order(goqu.I("i.name").Asc(), goqu.I("i.measurement_unit").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not build shopping list: %w", err)
	}

	items := make([]domain.ShoppingListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.ShoppingListItem{
			Name:            r.Name,
			MeasurementUnit: r.MeasurementUnit,
			Amount:          r.Amount,
		})
	}

	return items, nil
}
