// Package pdflist renders shopping lists as A4 PDF documents using fpdf.
//
// Coordinates below are measured in points from the bottom of the page.
// The title sits at titleY, items start at firstItemY and advance by
// lineStep. Once the cursor reaches bottomY the next item goes to a new
// page starting at pageTopY.
package pdflist

import (
	_ "embed"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/shoppinglist"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	Format = "pdf"

	marginX       = 50.0
	titleY        = 800.0
	firstItemY    = 750.0
	pageTopY      = 800.0
	bottomY       = 50.0
	lineStep      = 20.0
	titleFontSize = 24.0
	itemFontSize  = 14.0

	fontFamily = "ShoppingListFont"

	title      = "Shopping list:"
	emptyTitle = "Shopping list is empty!"
)

//go:embed fonts/DejaVuSansCondensed.ttf
var defaultFont []byte

// Options configures the PDF renderer.
type Options struct {
	// FontPath points to a TTF font used for all text. When empty the
	// embedded DejaVu Sans Condensed is used.
	FontPath string
	// DisableCompression writes content streams uncompressed.
	DisableCompression bool
}

type Renderer struct {
	options Options
	font    []byte
}

var _ shoppinglist.Renderer = (*Renderer)(nil)

// New creates a renderer, loading the configured font once.
func New(options Options) (*Renderer, error) {
	r := &Renderer{options: options, font: defaultFont}
	if options.FontPath != "" {
		font, err := os.ReadFile(options.FontPath)
		if err != nil {
			return nil, fmt.Errorf("could not read pdf font: %w", err)
		}
		r.font = font
	}

	return r, nil
}

func (r *Renderer) Format() string      { return Format }
func (r *Renderer) ContentType() string { return "application/pdf" }
func (r *Renderer) Filename() string    { return "shopping_list.pdf" }

// Render draws a numbered "<n>. <name> - <amount> <unit>" line per item.
func (r *Renderer) Render(w io.Writer, items []domain.ShoppingListItem) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(!r.options.DisableCompression)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("foodgram", true)
	pdf.SetTitle("Shopping list", true)
	pdf.SetCreationDate(time.Now().UTC())

	pdf.AddUTF8FontFromBytes(fontFamily, "", r.font)

	_, pageHeight := pdf.GetPageSize()
	text := func(y float64, s string) {
		pdf.Text(marginX, pageHeight-y, s)
	}

	pdf.AddPage()
	pdf.SetFont(fontFamily, "", titleFontSize)
	if len(items) == 0 {
		text(titleY, emptyTitle)

		return r.output(pdf, w)
	}

	text(titleY, title)
	pdf.SetFont(fontFamily, "", itemFontSize)
	y := firstItemY
	for i, item := range items {
		if y <= bottomY {
			pdf.AddPage()
			pdf.SetFont(fontFamily, "", itemFontSize)
			y = pageTopY
		}
		text(y, fmt.Sprintf("%d. %s - %d %s", i+1, item.Name, item.Amount, item.MeasurementUnit))
		y -= lineStep
	}

	return r.output(pdf, w)
}

func (r *Renderer) output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("could not render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write pdf: %w", err)
	}

	return nil
}
