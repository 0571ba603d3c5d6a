package domain

// TagID identifies a tag.
type TagID int64

// Tag labels recipes (e.g. breakfast, lunch). Slug is unique and used for filtering.
type Tag struct {
	ID    TagID
	Name  string
	Color string
	Slug  string
}

// IngredientID identifies an ingredient.
type IngredientID int64

// Ingredient is a catalog entry. The pair (Name, MeasurementUnit) is unique.
type Ingredient struct {
	ID              IngredientID
	Name            string
	MeasurementUnit string
}
