// Package parser provides Excel sheet reading and cell text utilities.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the rows of a sheet below the first skipRows rows.
// Cell values are returned unformatted so numbers keep full precision.
func ReadRows(f *excelize.File, sheetName string, skipRows int) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	if skipRows >= len(rows) {
		return nil, nil
	}
	return rows[skipRows:], nil
}

// UsedWidth returns the number of columns from firstCol (0-based) through the
// right-most non-empty cell across all rows. It returns 0 when nothing at or
// after firstCol is populated.
func UsedWidth(rows [][]string, firstCol int) int {
	maxCol := -1
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx >= firstCol && colIdx > maxCol; colIdx-- {
			if row[colIdx] != "" {
				maxCol = colIdx
				break
			}
		}
	}

	if maxCol < 0 {
		return 0
	}
	return maxCol - firstCol + 1
}

// SliceColumns cuts width columns starting at firstCol (0-based) out of every
// row. Short rows are padded with empty strings so each result has exactly
// width cells.
func SliceColumns(rows [][]string, firstCol, width int) [][]string {
	result := make([][]string, len(rows))
	for rowIdx, row := range rows {
		cells := make([]string, width)
		for i := 0; i < width; i++ {
			if colIdx := firstCol + i; colIdx < len(row) {
				cells[i] = row[colIdx]
			}
		}
		result[rowIdx] = cells
	}
	return result
}

// ColumnIndex converts a column name such as "B" to a 0-based index.
func ColumnIndex(name string) (int, error) {
	col, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, err
	}
	return col - 1, nil
}
