// Package shoppinglist defines how an aggregated shopping list is rendered
// into a downloadable document.
package shoppinglist

import (
	"foodgram/pkg/domain"
	"io"
)

// Renderer writes a shopping list in a single document format.
type Renderer interface {
	// Format is the value of the download "format" query parameter selecting this renderer.
	Format() string
	// ContentType is the MIME type of the rendered document.
	ContentType() string
	// Filename is the attachment name suggested to clients.
	Filename() string
	// Render writes items, in the given order, to w.
	Render(w io.Writer, items []domain.ShoppingListItem) error
}
