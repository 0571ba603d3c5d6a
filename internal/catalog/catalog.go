// Package catalog serves the read-only tag and ingredient catalog and loads
// it from JSON fixture files.
package catalog

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// defaultBatchSize bounds the number of rows inserted by a single statement.
const defaultBatchSize = 500

// Options configure fixture imports.
type Options struct {
	// BatchSize is the number of rows inserted per statement. Zero means defaultBatchSize.
	BatchSize int
}

// ImportResult reports the outcome of a fixture import.
type ImportResult struct {
	// Read is the number of records found in the fixture.
	Read int
	// Inserted is the number of new records; existing ones are skipped.
	Inserted int64
}

type catalog struct {
	options Options
	storage storage.Storage
}

func (c catalog) Tags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := c.storage.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get tags: %w", err)
	}

	return tags, nil
}

func (c catalog) Tag(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	tag, err := c.storage.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return tag, nil
}

// Ingredients lists ingredients whose name starts with filter.NamePrefix,
// ignoring case and surrounding spaces.
func (c catalog) Ingredients(ctx context.Context, filter storage.IngredientFilter) ([]domain.Ingredient, error) {
	filter.NamePrefix = strings.TrimSpace(filter.NamePrefix)
	filter.MeasurementUnit = strings.TrimSpace(filter.MeasurementUnit)

	ingredients, err := c.storage.Ingredients(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get ingredients: %w", err)
	}

	return ingredients, nil
}

func (c catalog) Ingredient(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	ingredient, err := c.storage.IngredientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get ingredient: %w", err)
	}
	if ingredient == nil {
		return nil, serrors.With(serrors.ErrNotFound, "ingredient not found")
	}

	return ingredient, nil
}

// New creates a Catalog backed by storage.
func New(storage storage.Storage, options Options) Catalog {
	if options.BatchSize <= 0 {
		options.BatchSize = defaultBatchSize
	}

	return &catalog{
		options: options,
		storage: storage,
	}
}

func decodeFixture[T any](r io.Reader) ([]T, error) {
	var records []T
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid fixture file")
	}

	return records, nil
}

// batches splits records into chunks of at most size elements.
func batches[T any](records []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(records); start += size {
		out = append(out, records[start:min(start+size, len(records))])
	}

	return out
}
