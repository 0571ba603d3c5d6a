package serrors_test

import (
	"errors"
	"fmt"
	"foodgram/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "recipe %d not found", 42)
	require.Equal(t, "recipe 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting recipe")
	require.Equal(t, "getting recipe: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestInvalidFields(t *testing.T) {
	fields := serrors.Fields{}
	require.True(t, fields.Empty())
	fields.Add("tags", "at least one tag is required")
	fields.Add("ingredients", "ingredient 3 is repeated")
	fields.Add("ingredients", "amount must be at least 1")

	e := serrors.Invalid(fields)
	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.Equal(t, fields, e.Fields())
	require.Equal(t,
		"invalid request: ingredients: ingredient 3 is repeated, amount must be at least 1; tags: at least one tag is required",
		e.Error())
}

func TestInvalidField(t *testing.T) {
	e := serrors.InvalidField("cooking_time", "must be at least %d", 1)
	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.Equal(t, serrors.Fields{"cooking_time": {"must be at least 1"}}, e.Fields())

	var se *serrors.Error
	require.ErrorAs(t, fmt.Errorf("creating recipe: %w", e), &se)
	require.Equal(t, "invalid request", se.Message())
}
