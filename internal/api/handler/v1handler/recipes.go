package v1handler

import (
	"bytes"
	"fmt"
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"maps"
	"net/http"
	"slices"
	"strings"
)

const defaultShoppingListFormat = "pdf"

// boolFilter parses the 0/1 flags of recipe listings. Absent means false.
func boolFilter(r *http.Request, name string) (bool, error) {
	switch r.URL.Query().Get(name) {
	case "", "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, serrors.InvalidField(name, "must be 0 or 1")
	}
}

func parseRecipeFilter(r *http.Request) (recipes.Filter, error) {
	query := r.URL.Query()
	filter := recipes.Filter{Tags: query["tags"]}

	if raw := query.Get("author"); raw != "" {
		authorID, err := domain.ParseUserID(raw)
		if err != nil {
			return filter, serrors.InvalidField("author", "enter a valid id")
		}
		filter.AuthorID = &authorID
	}

	var err error
	if filter.IsFavorited, err = boolFilter(r, "is_favorited"); err != nil {
		return filter, err
	}
	if filter.IsInShoppingCart, err = boolFilter(r, "is_in_shopping_cart"); err != nil {
		return filter, err
	}

	return filter, nil
}

// ListRecipes returns a page of recipes, newest first.
func (h Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	filter, err := parseRecipeFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Recipes.List(r.Context(), GetUserIDFromContext(r.Context()), filter, page.storagePage())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := paginate(r, page, res.Count, mapSlice(res.Recipes, DomainRecipeToV1))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

// GetRecipe returns a recipe by id.
func (h Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Get(r.Context(), GetUserIDFromContext(r.Context()), domain.RecipeID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainRecipeToV1(recipe))
}

// CreateRecipe publishes a recipe authored by the caller.
func (h Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var input recipes.Input
	if err := h.decodeJSON(w, r, &input); err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Create(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainRecipeToV1(recipe))
}

// UpdateRecipe changes a recipe of the caller. It serves both PUT and PATCH.
func (h Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var input recipes.Input
	if err := h.decodeJSON(w, r, &input); err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Update(r.Context(), GetUserIDFromContext(r.Context()), domain.RecipeID(id), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainRecipeToV1(recipe))
}

// DeleteRecipe removes a recipe of the caller.
func (h Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Recipes.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.RecipeID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddToCollection returns a handler adding the recipe to the caller's collection.
func (h Handler) AddToCollection(collection domain.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "id")
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		recipe, err := h.deps.Recipes.AddToCollection(r.Context(),
			collection,
			GetUserIDFromContext(r.Context()),
			domain.RecipeID(id))
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(w, r, http.StatusCreated, DomainShortRecipeToV1(recipe))
	}
}

// RemoveFromCollection returns a handler removing the recipe from the caller's collection.
func (h Handler) RemoveFromCollection(collection domain.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "id")
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		if err := h.deps.Recipes.RemoveFromCollection(r.Context(),
			collection,
			GetUserIDFromContext(r.Context()),
			domain.RecipeID(id)); err != nil {
			h.writeError(w, r, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DownloadShoppingCart renders the caller's shopping list as an attachment
// in the requested format.
func (h Handler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = h.options.DefaultFormat
	}
	if format == "" {
		format = defaultShoppingListFormat
	}
	renderer, ok := h.renderers[format]
	if !ok {
		h.writeError(w, r, serrors.InvalidField("format", "must be one of: %s",
			strings.Join(slices.Sorted(maps.Keys(h.renderers)), ", ")))

		return
	}

	items, err := h.deps.Recipes.ShoppingList(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, items); err != nil {
		h.writeError(w, r, fmt.Errorf("could not render shopping list: %w", err))

		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", renderer.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
