// Package output serializes extraction results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

// Header is the column header of the master CSV.
var Header = []string{"Metric", "Period_Type_Raw", "Amount", "Fiscal Year", "Fiscal Quarter"}

// WriteCSV writes the table with a header row. Null amounts are written as
// empty fields.
func WriteCSV(w io.Writer, table models.MasterTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table {
		var amount string
		if row.Amount.Valid {
			amount = row.Amount.Decimal.String()
		}
		record := []string{
			row.Metric,
			row.PeriodType,
			amount,
			strconv.Itoa(row.Year),
			row.Quarter,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the table to path, creating parent directories as needed.
func WriteFile(path string, table models.MasterTable) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteCSV(file, table); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
