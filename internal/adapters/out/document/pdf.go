package document

import (
	"fmt"
	"io"

	"warehouse/internal/core/ports"

	"github.com/go-pdf/fpdf"
)

const (
	pdfRowsPerPage = 32
	pdfFont        = "Helvetica"
	pdfRowHeight   = 7.0
)

// PDFRenderer prints A4 pages with a repeated table header and a page
// counter in the footer. Core fonts are cp1252, characters outside of it
// are replaced.
type PDFRenderer struct {
	rowsPerPage int
}

func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{rowsPerPage: pdfRowsPerPage}
}

func (PDFRenderer) Format() ports.DocumentFormat { return ports.FormatPDF }

func (PDFRenderer) ContentType() string { return "application/pdf" }

func (r PDFRenderer) Render(w io.Writer, note ports.DeliveryNote) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("")
	pdf.SetCreationDate(note.PrintedAt)
	pdf.SetTitle(fmt.Sprintf("%s %s", title, note.OrderNumber), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	columns := []struct {
		name  string
		width float64
		align string
	}{
		{"#", 10, "R"},
		{"Product", 95, "L"},
		{"SKU", 45, "L"},
		{"Picked", 30, "R"},
	}

	pages := chunk(note.Lines, r.rowsPerPage)
	for i, page := range pages {
		pdf.AddPage()

		pdf.SetFont(pdfFont, "B", 18)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont(pdfFont, "", 11)
		for _, row := range [][2]string{
			{"Order", note.OrderNumber},
			{"Customer", customerOf(note)},
			{"Status", statusOf(note)},
			{"Printed", note.PrintedAt.Format(printTimeLayout)},
		} {
			pdf.CellFormat(30, 6, row[0]+":", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)

		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetFillColor(217, 225, 242)
		for _, c := range columns {
			pdf.CellFormat(c.width, pdfRowHeight, c.name, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(pdfFont, "", 10)
		for j, line := range page {
			cells := []string{
				fmt.Sprintf("%d", i*r.rowsPerPage+j+1),
				tr(truncate(line.ProductName, 55)),
				tr(truncate(line.SKU, 24)),
				fmt.Sprintf("%d/%d set", line.PickedQty, line.Quantity),
			}
			for k, c := range columns {
				pdf.CellFormat(c.width, pdfRowHeight, cells[k], "1", 0, c.align, false, 0, "")
			}
			pdf.Ln(-1)
		}

		if i == len(pages)-1 {
			picked, quantity := totals(note)
			pdf.SetFont(pdfFont, "B", 10)
			pdf.CellFormat(150, pdfRowHeight, "Total", "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, pdfRowHeight, fmt.Sprintf("%d/%d set", picked, quantity), "1", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}
