package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	tagsTable        = "tags"
	ingredientsTable = "ingredients"
)

func (p *PgSQL) Tags(ctx context.Context) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) TagByID(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.From(tagsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	tag := row.ToDomain()

	return &tag, nil
}

func (p *PgSQL) TagsByIDs(ctx context.Context, ids []domain.TagID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("id").In(raw)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by ids: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

// StoreTags inserts tags and silently skips the ones that collide with an
// existing name, color or slug.
func (p *PgSQL) StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	rows := make([]PgTag, len(tags))
	for i := range tags {
		rows[i].FromDomain(tags[i])
	}

	res, err := p.Builder.Insert(tagsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store tags into pg: %w", err)
	}

	return rowsAffected(res)
}

// Ingredients lists ingredients whose name starts with filter.NamePrefix
// (case-insensitive) and whose unit equals filter.MeasurementUnit.
func (p *PgSQL) Ingredients(ctx context.Context, filter storage.IngredientFilter) ([]domain.Ingredient, error) {
	var w []goqu.Expression
	if filter.NamePrefix != "" {
		w = append(w, goqu.Func("LOWER", goqu.I("name")).Like(escapeLike(strings.ToLower(filter.NamePrefix))+"%"))
	}
	if filter.MeasurementUnit != "" {
		w = append(w, goqu.I("measurement_unit").Eq(filter.MeasurementUnit))
	}

	var rows []PgIngredient
	if err := p.Builder.From(ingredientsTable).
		Where(w...).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients from pg: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

func (p *PgSQL) IngredientByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	var row PgIngredient
	found, err := p.Builder.From(ingredientsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ingredient by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	ingredient := row.ToDomain()

	return &ingredient, nil
}

func (p *PgSQL) IngredientsByIDs(ctx context.Context, ids []domain.IngredientID) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	var rows []PgIngredient
	if err := p.Builder.From(ingredientsTable).
		Where(goqu.I("id").In(raw)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients by ids: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

// StoreIngredients inserts ingredients and skips existing (name, unit) pairs.
func (p *PgSQL) StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	rows := make([]PgIngredient, len(ingredients))
	for i := range ingredients {
		rows[i].FromDomain(ingredients[i])
	}

	res, err := p.Builder.Insert(ingredientsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store ingredients into pg: %w", err)
	}

	return rowsAffected(res)
}

// escapeLike escapes LIKE wildcards so user input is matched literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
