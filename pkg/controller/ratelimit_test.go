package controller_test

import (
	"foodgram/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := controller.WithRateLimit(2, time.Minute)(next)

	do := func(ip string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/api/tags/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Result()
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1").StatusCode)
	require.Equal(t, http.StatusOK, do("10.0.0.1").StatusCode)

	res := do("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	// other clients have their own budget
	require.Equal(t, http.StatusOK, do("10.0.0.2").StatusCode)
}

func TestWithRateLimit_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := controller.WithRateLimit(0, time.Minute)(next)

	for range 10 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
