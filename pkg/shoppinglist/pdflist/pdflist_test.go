package pdflist_test

import (
	"bytes"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/shoppinglist/pdflist"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

// 35 lines fit between the first item and the bottom margin, 38 on every
// following page.
const (
	firstPageItems = 35
	otherPageItems = 38
)

func render(t *testing.T, items []domain.ShoppingListItem) []byte {
	t.Helper()

	r, err := pdflist.New(pdflist.Options{DisableCompression: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, items))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	return buf.Bytes()
}

// tj returns the content stream operator drawing s with a UTF-8 font: the
// text is written as escaped UTF-16BE.
func tj(s string) string {
	var b strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		for _, c := range []byte{byte(u >> 8), byte(u)} {
			switch c {
			case '\\', '(', ')':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\r':
				b.WriteString(`\r`)
			default:
				b.WriteByte(c)
			}
		}
	}

	return "(" + b.String() + ") Tj"
}

func pages(doc []byte) int {
	return bytes.Count(doc, []byte("<</Type /Page\n"))
}

func makeItems(n int) []domain.ShoppingListItem {
	items := make([]domain.ShoppingListItem, 0, n)
	for i := range n {
		items = append(items, domain.ShoppingListItem{
			Name:            fmt.Sprintf("ingredient %03d", i),
			MeasurementUnit: "g",
			Amount:          int64(i + 1),
		})
	}

	return items
}

func TestRenderer_Metadata(t *testing.T) {
	t.Parallel()

	r, err := pdflist.New(pdflist.Options{})
	require.NoError(t, err)
	require.Equal(t, "pdf", r.Format())
	require.Equal(t, "application/pdf", r.ContentType())
	require.Equal(t, "shopping_list.pdf", r.Filename())
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		doc := render(t, nil)
		require.Equal(t, 1, pages(doc))
		require.Contains(t, string(doc), tj("Shopping list is empty!"))
		require.NotContains(t, string(doc), tj("Shopping list:"))
	})

	t.Run("numbered lines", func(t *testing.T) {
		t.Parallel()

		doc := render(t, []domain.ShoppingListItem{
			{Name: "eggs", MeasurementUnit: "pcs", Amount: 5},
			{Name: "sugar", MeasurementUnit: "g", Amount: 150},
		})
		require.Equal(t, 1, pages(doc))
		require.Contains(t, string(doc), tj("Shopping list:"))
		require.Contains(t, string(doc), tj("1. eggs - 5 pcs"))
		require.Contains(t, string(doc), tj("2. sugar - 150 g"))
	})

	t.Run("cyrillic names", func(t *testing.T) {
		t.Parallel()

		doc := render(t, []domain.ShoppingListItem{
			{Name: "Мука", MeasurementUnit: "г", Amount: 500},
			{Name: "Молоко (3,2%)", MeasurementUnit: "мл", Amount: 250},
		})
		require.Contains(t, string(doc), tj("1. Мука - 500 г"))
		require.Contains(t, string(doc), tj("2. Молоко (3,2%) - 250 мл"))
		require.NotContains(t, string(doc), "(1. .... - 500 .) Tj")
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			items int
			pages int
		}{
			{1, 1},
			{firstPageItems, 1},
			{firstPageItems + 1, 2},
			{firstPageItems + otherPageItems, 2},
			{firstPageItems + otherPageItems + 1, 3},
		}
		for _, tt := range tests {
			doc := render(t, makeItems(tt.items))
			require.Equal(t, tt.pages, pages(doc), "items: %d", tt.items)
			require.Contains(t, string(doc), tj(fmt.Sprintf("%d. ingredient %03d - %d g", tt.items, tt.items-1, tt.items)))
		}
	})

	t.Run("compressed", func(t *testing.T) {
		t.Parallel()

		r, err := pdflist.New(pdflist.Options{})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, makeItems(3)))
		require.Equal(t, 1, pages(buf.Bytes()))
		require.NotContains(t, buf.String(), tj("1. ingredient 000 - 1 g"))
	})
}

func TestRenderer_CustomFont(t *testing.T) {
	t.Parallel()

	r, err := pdflist.New(pdflist.Options{
		FontPath:           filepath.Join("fonts", "DejaVuSansCondensed.ttf"),
		DisableCompression: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, []domain.ShoppingListItem{{Name: "Соль", MeasurementUnit: "г", Amount: 5}}))
	require.Contains(t, buf.String(), tj("1. Соль - 5 г"))
}

func TestNew_MissingFont(t *testing.T) {
	t.Parallel()

	_, err := pdflist.New(pdflist.Options{FontPath: filepath.Join(t.TempDir(), "missing.ttf")})
	require.Error(t, err)
}
