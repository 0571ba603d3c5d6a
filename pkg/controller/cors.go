package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSOptions configures WithCORS.
type CORSOptions struct {
	// AllowedOrigins lists allowed origins; empty or "*" allows any origin.
	AllowedOrigins []string
	// MaxAge is how long, in seconds, browsers may cache preflight results.
	MaxAge int
}

// WithCORS returns a middleware that applies the CORS policy and
// short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
			"Accept", "Origin", "Cache-Control", "X-Request-Id",
		},
		ExposedHeaders:     []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:             opts.MaxAge,
		OptionsPassthrough: true,
	})

	return func(next http.Handler) http.Handler {
		return c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}
