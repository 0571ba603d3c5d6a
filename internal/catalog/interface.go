package catalog

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"io"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	Tags(ctx context.Context) ([]domain.Tag, error)
	Tag(ctx context.Context, ID domain.TagID) (*domain.Tag, error)
	Ingredients(ctx context.Context, filter storage.IngredientFilter) ([]domain.Ingredient, error)
	Ingredient(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error)
	ImportTags(ctx context.Context, r io.Reader) (ImportResult, error)
	ImportIngredients(ctx context.Context, r io.Reader) (ImportResult, error)
}
