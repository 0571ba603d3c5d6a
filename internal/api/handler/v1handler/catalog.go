package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// int64Param parses a numeric path parameter. Malformed ids cannot match
// any resource and are reported as not found.
func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, serrors.With(serrors.ErrNotFound, "resource not found")
	}

	return id, nil
}

// ListTags returns every tag.
func (h Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.deps.Catalog.Tags(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, mapSlice(tags, DomainTagToV1))
}

// GetTag returns a tag by id.
func (h Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	tag, err := h.deps.Catalog.Tag(r.Context(), domain.TagID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainTagToV1(tag))
}

// ListIngredients returns ingredients, optionally filtered by name prefix
// and measurement unit.
func (h Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ingredients, err := h.deps.Catalog.Ingredients(r.Context(), storage.IngredientFilter{
		NamePrefix:      query.Get("name"),
		MeasurementUnit: query.Get("measurement_unit"),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, mapSlice(ingredients, DomainIngredientToV1))
}

// GetIngredient returns an ingredient by id.
func (h Handler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ingredient, err := h.deps.Catalog.Ingredient(r.Context(), domain.IngredientID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainIngredientToV1(ingredient))
}
