package v1handler

import (
	"foodgram/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes mounts the v1 API. Trailing slashes are optional.
func (h Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)
	r.Use(h.Authenticate(sec))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})

	r.Get("/tags", h.ListTags)
	r.Get("/tags/{id}", h.GetTag)
	r.Get("/ingredients", h.ListIngredients)
	r.Get("/ingredients/{id}", h.GetIngredient)

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.ListRecipes)
		r.Get("/{id}", h.GetRecipe)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireUser)

			r.Post("/", h.CreateRecipe)
			r.Put("/{id}", h.UpdateRecipe)
			r.Patch("/{id}", h.UpdateRecipe)
			r.Delete("/{id}", h.DeleteRecipe)
			r.Get("/download_shopping_cart", h.DownloadShoppingCart)
			r.Post("/{id}/favorite", h.AddToCollection(domain.CollectionFavorites))
			r.Delete("/{id}/favorite", h.RemoveFromCollection(domain.CollectionFavorites))
			r.Post("/{id}/shopping_cart", h.AddToCollection(domain.CollectionShoppingCart))
			r.Delete("/{id}/shopping_cart", h.RemoveFromCollection(domain.CollectionShoppingCart))
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Get("/{id}", h.GetUser)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireUser)

			r.Get("/me", h.Me)
			r.Get("/subscriptions", h.Subscriptions)
			r.Post("/{id}/subscribe", h.Subscribe)
			r.Delete("/{id}/subscribe", h.Unsubscribe)
		})
	})

	return r
}
