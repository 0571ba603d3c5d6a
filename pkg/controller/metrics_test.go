package controller_test

import (
	"foodgram/pkg/controller"
	"foodgram/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(controller.WithMetrics)
	r.Get("/api/recipes/{id}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/recipes/{id}/", "202")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/api/recipes/1/", "/api/recipes/2/"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	require.InDelta(t, before+2, testutil.ToFloat64(counter), 0.0001)
}

func TestWithMetrics_Unmatched(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "200")
	before := testutil.ToFloat64(counter)

	handler := controller.WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.InDelta(t, before+1, testutil.ToFloat64(counter), 0.0001)
}
