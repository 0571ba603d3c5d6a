package catalog

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/validation"
	"io"
	"strings"
)

// TagFixture is a tag record of a fixture file.
type TagFixture struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor"`
	Slug  string `json:"slug"  validate:"required,max=200"`
}

// IngredientFixture is an ingredient record of a fixture file.
type IngredientFixture struct {
	Name            string `json:"name"             validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

// ImportTags reads a JSON array of TagFixture and inserts the tags that do
// not exist yet. The whole file is imported in one transaction.
func (c catalog) ImportTags(ctx context.Context, r io.Reader) (ImportResult, error) {
	records, err := decodeFixture[TagFixture](r)
	if err != nil {
		return ImportResult{}, err
	}

	tags := make([]domain.Tag, 0, len(records))
	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Slug = strings.TrimSpace(rec.Slug)
		rec.Color = strings.ToUpper(strings.TrimSpace(rec.Color))
		if err := validation.Struct(rec); err != nil {
			return ImportResult{}, fmt.Errorf("invalid tag at index %d: %w", i, err)
		}
		tags = append(tags, domain.Tag{Name: rec.Name, Color: rec.Color, Slug: rec.Slug})
	}

	res := ImportResult{Read: len(records)}
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, batch := range batches(tags, c.options.BatchSize) {
			n, err := tx.StoreTags(ctx, batch...)
			if err != nil {
				return fmt.Errorf("could not store tags: %w", err)
			}
			res.Inserted += n
		}

		return nil
	}); err != nil {
		return ImportResult{}, fmt.Errorf("could not import tags: %w", err)
	}

	return res, nil
}

// ImportIngredients reads a JSON array of IngredientFixture and inserts the
// ingredients that do not exist yet.
func (c catalog) ImportIngredients(ctx context.Context, r io.Reader) (ImportResult, error) {
	records, err := decodeFixture[IngredientFixture](r)
	if err != nil {
		return ImportResult{}, err
	}

	ingredients := make([]domain.Ingredient, 0, len(records))
	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.MeasurementUnit = strings.TrimSpace(rec.MeasurementUnit)
		if err := validation.Struct(rec); err != nil {
			return ImportResult{}, fmt.Errorf("invalid ingredient at index %d: %w", i, err)
		}
		ingredients = append(ingredients, domain.Ingredient{Name: rec.Name, MeasurementUnit: rec.MeasurementUnit})
	}

	res := ImportResult{Read: len(records)}
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, batch := range batches(ingredients, c.options.BatchSize) {
			n, err := tx.StoreIngredients(ctx, batch...)
			if err != nil {
				return fmt.Errorf("could not store ingredients: %w", err)
			}
			res.Inserted += n
		}

		return nil
	}); err != nil {
		return ImportResult{}, fmt.Errorf("could not import ingredients: %w", err)
	}

	return res, nil
}
