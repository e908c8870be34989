package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/propscan/propscan/internal/extract"
)

// WriteXLSX produces a one-sheet workbook of the batch, one row per document.
func WriteXLSX(path string, records []extract.Record) error {
	f := excelize.NewFile()
	const sheet = "Documents"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{
		"Source File",
		"Buyer Name",
		"Seller Name",
		"Property Address",
		"Key Dates",
		"Offer Price",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.SourceFile)
		write(2, r.BuyerName)
		write(3, r.SellerName)
		write(4, r.PropertyAddress)
		write(5, r.KeyDates)
		write(6, r.OfferPrice)
		row++
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "C", 22)
	_ = f.SetColWidth(sheet, "D", "D", 32)
	_ = f.SetColWidth(sheet, "E", "F", 16)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
