package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"warehouse/internal/core/ports"
)

const defaultLinesPerPage = 30

// TextRenderer prints a fixed-width note. Pages are separated by a form feed.
type TextRenderer struct {
	linesPerPage int
}

func NewTextRenderer(linesPerPage int) TextRenderer {
	if linesPerPage < 1 {
		linesPerPage = defaultLinesPerPage
	}
	return TextRenderer{linesPerPage: linesPerPage}
}

func (TextRenderer) Format() ports.DocumentFormat { return ports.FormatText }

func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r TextRenderer) Render(w io.Writer, note ports.DeliveryNote) error {
	bw := bufio.NewWriter(w)
	pages := chunk(note.Lines, r.linesPerPage)

	for i, page := range pages {
		if i > 0 {
			fmt.Fprint(bw, "\f\n")
		}
		fmt.Fprintf(bw, "%s\n", strings.ToUpper(title))
		fmt.Fprintf(bw, "Order:    %s\n", note.OrderNumber)
		fmt.Fprintf(bw, "Customer: %s\n", customerOf(note))
		fmt.Fprintf(bw, "Status:   %s\n", statusOf(note))
		fmt.Fprintf(bw, "Printed:  %s\n\n", note.PrintedAt.Format(printTimeLayout))

		fmt.Fprintf(bw, "%-4s %-32s %-16s %s\n", "#", "Product", "SKU", "Picked")
		for j, line := range page {
			n := i*r.linesPerPage + j + 1
			fmt.Fprintf(bw, "%-4d %-32s %-16s %d/%d set\n",
				n, truncate(line.ProductName, 32), truncate(line.SKU, 16), line.PickedQty, line.Quantity)
		}

		if i == len(pages)-1 {
			picked, quantity := totals(note)
			fmt.Fprintf(bw, "\nTotal: %d/%d set\n", picked, quantity)
		}
		fmt.Fprintf(bw, "\nPage %d/%d\n", i+1, len(pages))
	}
	return bw.Flush()
}
