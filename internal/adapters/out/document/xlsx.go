package document

import (
	"fmt"
	"io"

	"warehouse/internal/core/ports"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Delivery Note"

// XLSXRenderer writes the note to a single worksheet: a details block
// followed by one row per order item.
type XLSXRenderer struct{}

func NewXLSXRenderer() XLSXRenderer {
	return XLSXRenderer{}
}

func (XLSXRenderer) Format() ports.DocumentFormat { return ports.FormatXLSX }

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXRenderer) Render(w io.Writer, note ports.DeliveryNote) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	details := [][2]string{
		{"Order", note.OrderNumber},
		{"Customer", customerOf(note)},
		{"Status", note.Status},
		{"Fulfillment", note.FulfillmentStatus},
		{"Printed", note.PrintedAt.Format(printTimeLayout)},
	}
	sw := sheetWriter{f: f, sheet: xlsxSheet}
	for i, d := range details {
		row := i + 1
		sw.value(fmt.Sprintf("A%d", row), d[0])
		sw.value(fmt.Sprintf("B%d", row), d[1])
		sw.style(fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
	}

	headerRow := len(details) + 2
	for i, h := range []string{"#", "Product", "SKU", "Picked", "Quantity"} {
		cell, cerr := excelize.CoordinatesToCellName(i+1, headerRow)
		if cerr != nil {
			return cerr
		}
		sw.value(cell, h)
		sw.style(cell, cell, header)
	}

	row := headerRow
	for i, line := range note.Lines {
		row++
		sw.value(fmt.Sprintf("A%d", row), i+1)
		sw.value(fmt.Sprintf("B%d", row), line.ProductName)
		sw.value(fmt.Sprintf("C%d", row), line.SKU)
		sw.value(fmt.Sprintf("D%d", row), line.PickedQty)
		sw.value(fmt.Sprintf("E%d", row), line.Quantity)
	}

	row++
	picked, quantity := totals(note)
	sw.value(fmt.Sprintf("C%d", row), "Total")
	sw.value(fmt.Sprintf("D%d", row), picked)
	sw.value(fmt.Sprintf("E%d", row), quantity)
	sw.style(fmt.Sprintf("C%d", row), fmt.Sprintf("E%d", row), bold)

	for col, width := range map[string]float64{"A": 12, "B": 40, "C": 20, "D": 10, "E": 10} {
		if sw.err == nil {
			sw.err = f.SetColWidth(xlsxSheet, col, col, width)
		}
	}
	if sw.err != nil {
		return sw.err
	}

	// repeat the table header on every printed page
	err = f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$%d:$%d", xlsxSheet, headerRow, headerRow),
		Scope:    xlsxSheet,
	})
	if err != nil {
		return fmt.Errorf("set print titles: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}

// sheetWriter keeps the first error of a run of cell writes; later writes
// are skipped once one failed.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (sw *sheetWriter) value(cell string, v any) {
	if sw.err == nil {
		sw.err = sw.f.SetCellValue(sw.sheet, cell, v)
	}
}

func (sw *sheetWriter) style(from, to string, styleID int) {
	if sw.err == nil {
		sw.err = sw.f.SetCellStyle(sw.sheet, from, to, styleID)
	}
}
