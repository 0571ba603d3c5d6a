// Package textlist renders shopping lists as plain text, one ingredient per line.
package textlist

import (
	"bufio"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/shoppinglist"
	"io"
)

const Format = "txt"

type Renderer struct{}

var _ shoppinglist.Renderer = Renderer{}

func New() Renderer {
	return Renderer{}
}

func (Renderer) Format() string      { return Format }
func (Renderer) ContentType() string { return "text/plain; charset=utf-8" }
func (Renderer) Filename() string    { return "shopping_list.txt" }

// Render writes "<name> <unit> - <amount>" lines. An empty list produces
// an empty document.
func (Renderer) Render(w io.Writer, items []domain.ShoppingListItem) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintf(bw, "%s %s - %d\n", item.Name, item.MeasurementUnit, item.Amount); err != nil {
			return fmt.Errorf("could not write shopping list line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not flush shopping list: %w", err)
	}

	return nil
}
