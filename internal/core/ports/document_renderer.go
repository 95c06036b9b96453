package ports

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DocumentFormat selects a delivery note rendering.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatXLSX DocumentFormat = "xlsx"
	FormatText DocumentFormat = "txt"
)

// DeliveryNote is the read model printed for a picked order.
type DeliveryNote struct {
	OrderNumber       string
	CustomerName      string
	Status            string
	FulfillmentStatus string
	PrintedAt         time.Time
	Lines             []DeliveryNoteLine
}

// FileName is the download name of the note, e.g. delivery-note-1001.pdf.
func (n DeliveryNote) FileName(format DocumentFormat) string {
	number := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '"' || r < ' ' {
			return '-'
		}
		return r
	}, n.OrderNumber)
	return fmt.Sprintf("delivery-note-%s.%s", number, format)
}

type DeliveryNoteLine struct {
	ProductName string
	SKU         string
	PickedQty   int
	Quantity    int
}

// DocumentRenderer writes a delivery note in one format.
type DocumentRenderer interface {
	Format() DocumentFormat
	ContentType() string
	Render(w io.Writer, note DeliveryNote) error
}
