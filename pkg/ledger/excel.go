package ledger

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel is a Ledger backed by an xlsx workbook. Only the first sheet is
// consulted; that is where the bookkeeping template keeps the member rows.
type Excel struct {
	file  *excelize.File
	sheet string
}

// OpenExcel opens the workbook at path.
func OpenExcel(path string) (*Excel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		_ = f.Close()
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrOpenFailed)
	}

	return &Excel{file: f, sheet: sheet}, nil
}

// SheetName implements Ledger.
func (e *Excel) SheetName() string {
	return e.sheet
}

// Cell implements Ledger. excelize only errors on malformed coordinates or
// an unknown sheet, both of which are under our control, so a failed lookup
// reads as an empty cell.
func (e *Excel) Cell(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	value, _ := e.file.GetCellValue(e.sheet, name)
	return strings.TrimSpace(value)
}

// SetCell implements Ledger.
func (e *Excel) SetCell(row, col int, value any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	if err := e.file.SetCellValue(e.sheet, name, value); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

// Save implements Ledger, rewriting the workbook file in place.
func (e *Excel) Save() error {
	if err := e.file.Save(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

// Close releases the underlying workbook handle.
func (e *Excel) Close() error {
	return e.file.Close()
}
