package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders rows into a single-sheet workbook with a bold header.
func WriteXLSX[T any](sheet string, cols []Column[T], rows []T) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := make([]any, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(cols))
		_ = f.SetCellStyle(sheet, "A1", lastCol+"1", bold)
	}

	for n, row := range rows {
		cells := make([]any, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", n+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
