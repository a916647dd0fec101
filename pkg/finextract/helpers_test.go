package finextract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// incomeStatement returns the rows of a condensed statement of operations as
// laid out from column B. Five of the labels are section headers or line
// items outside the allow-list.
func incomeStatement(wide bool) [][]interface{} {
	line := func(label string, values ...int) []interface{} {
		if !wide {
			values = values[:2]
		}
		row := []interface{}{label}
		for _, v := range values {
			row = append(row, v)
		}
		return row
	}
	return [][]interface{}{
		{"Net sales:"},
		line("Products", 69958, 67184, 224908, 230363),
		line("Services", 24972, 22314, 71197, 62886),
		line("Total net sales", 94930, 89498, 296105, 293249),
		{"Cost of sales:"},
		line("Total cost of sales", 51051, 49071, 160402, 163762),
		line("Gross margin", 43879, 40427, 135703, 129487),
		{"Operating expenses:"},
		line("Research and development", 8006, 7442, 23812, 22359),
		line("Selling, general and administrative:", 6487, 6151, 19574, 18929),
		line("Total operating expenses", 14493, 13593, 43386, 41288),
		line("Operating income", 29386, 26834, 92317, 88199),
		line("Other income/(expense), net", -209, -329, -459, -584),
		line("Net income", 21448, 19881, 79000, 74039),
	}
}

// retainedMetrics is the number of allow-listed rows in incomeStatement.
const retainedMetrics = 9

// writeWorkbook saves rows to dir/name on the INCOME_STATEMENT sheet starting
// at B19, below a title block that the extractor skips.
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := DefaultSheetName
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetCellValue(sheet, "A1", "CONDENSED CONSOLIDATED STATEMENTS OF OPERATIONS (Unaudited)"))
	require.NoError(t, f.SetCellValue(sheet, "B3", "(In millions, except per-share amounts)"))

	for i, row := range rows {
		r := row
		cell := fmt.Sprintf("B%d", DefaultSkipRows+1+i)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.InputDir = dir
	opts.OutputPath = filepath.Join(dir, "out", DefaultOutputPath)
	return opts
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}
