// Package export serializes the full expense collection into downloadable
// documents. Exports always cover the whole collection in store order,
// independent of any active search or category filter.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
)

// Default artifact names offered to the user.
const (
	CSVFileName  = "expenses.csv"
	XLSXFileName = "expenses.xlsx"
)

// header is the column layout shared by both formats.
var header = []string{"id", "amount", "category", "description", "date", "createdAt"}

// WriteCSV writes the collection as CSV with a header row. Fields with
// embedded delimiters or quotes come out quoted per the usual CSV rules.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			e.ID,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Category,
			e.Description,
			e.Date,
			strconv.FormatInt(e.CreatedAt, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the collection as a single-sheet spreadsheet with the
// same columns as the CSV export.
func WriteXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{e.ID, e.Amount, e.Category, e.Description, e.Date, e.CreatedAt}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
