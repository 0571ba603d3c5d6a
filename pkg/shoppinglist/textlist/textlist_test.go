package textlist_test

import (
	"bytes"
	"errors"
	"foodgram/pkg/domain"
	"foodgram/pkg/shoppinglist/textlist"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := textlist.New()
	require.Equal(t, "txt", r.Format())
	require.Equal(t, "shopping_list.txt", r.Filename())
	require.Contains(t, r.ContentType(), "text/plain")

	t.Run("lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := r.Render(&buf, []domain.ShoppingListItem{
			{Name: "eggs", MeasurementUnit: "pcs", Amount: 5},
			{Name: "сахар", MeasurementUnit: "г", Amount: 150},
		})
		require.NoError(t, err)
		require.Equal(t, "eggs pcs - 5\nсахар г - 150\n", buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, nil))
		require.Empty(t, buf.String())
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		err := r.Render(failingWriter{}, []domain.ShoppingListItem{{Name: "salt", MeasurementUnit: "g", Amount: 1}})
		require.ErrorContains(t, err, "disk full")
	})
}
