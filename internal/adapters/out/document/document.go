// Package document renders delivery notes. Each renderer implements
// ports.DocumentRenderer; Registry picks one by format.
package document

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

const (
	title           = "Delivery Note"
	printTimeLayout = "2006-01-02 15:04"
)

// Registry holds the renderers by format. The zero format selects PDF.
type Registry struct {
	renderers map[ports.DocumentFormat]ports.DocumentRenderer
}

func NewRegistry(renderers ...ports.DocumentRenderer) *Registry {
	r := &Registry{renderers: make(map[ports.DocumentFormat]ports.DocumentRenderer, len(renderers))}
	for _, renderer := range renderers {
		r.renderers[renderer.Format()] = renderer
	}
	return r
}

// NewDefaultRegistry registers the PDF, XLSX and text renderers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewPDFRenderer(), NewXLSXRenderer(), NewTextRenderer(0))
}

// Lookup returns errs.ErrValueIsInvalid for unsupported formats.
func (r *Registry) Lookup(format string) (ports.DocumentRenderer, error) {
	f := ports.DocumentFormat(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = ports.FormatPDF
	}
	renderer, ok := r.renderers[f]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("format", fmt.Errorf("unsupported format %q", format))
	}
	return renderer, nil
}

func customerOf(note ports.DeliveryNote) string {
	if strings.TrimSpace(note.CustomerName) == "" {
		return "-"
	}
	return note.CustomerName
}

func statusOf(note ports.DeliveryNote) string {
	if note.FulfillmentStatus == "" {
		return note.Status
	}
	return note.Status + " / " + note.FulfillmentStatus
}

func totals(note ports.DeliveryNote) (picked, quantity int) {
	for _, l := range note.Lines {
		picked += l.PickedQty
		quantity += l.Quantity
	}
	return picked, quantity
}

// chunk splits the lines into pages of at most size lines. A note without
// lines still has one page.
func chunk(lines []ports.DeliveryNoteLine, size int) [][]ports.DeliveryNoteLine {
	if len(lines) == 0 {
		return [][]ports.DeliveryNoteLine{nil}
	}
	pages := make([][]ports.DeliveryNoteLine, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		pages = append(pages, lines[start:end])
	}
	return pages
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "~"
}
