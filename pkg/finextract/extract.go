package finextract

import (
	"errors"
	"fmt"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
	"github.com/ukaji3/finextract-go/pkg/finextract/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the income statement region of a workbook.
// The wide layout is attempted first; when the region is too narrow for it
// the narrow layout is used instead. If neither fits, a *FormatError of kind
// KindLayout is returned.
func Extract(path string, opts Options) (*models.RawTable, error) {
	firstCol, err := parser.ColumnIndex(opts.FirstColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid first column %q: %w", opts.FirstColumn, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parser.ReadRows(f, opts.SheetName, opts.SkipRows)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, opts.SheetName, path)
		}
		return nil, fmt.Errorf("failed to read sheet %q in %s: %w", opts.SheetName, path, err)
	}

	layout, cells, err := DetectLayout(rows, firstCol)
	if err != nil {
		return nil, NewFormatError(path, KindLayout, err)
	}

	table := &models.RawTable{
		Source:  path,
		Layout:  layout,
		Columns: layout.Columns(),
		Rows:    make([]models.RawRow, 0, len(cells)),
	}
	for i, row := range cells {
		table.Rows = append(table.Rows, models.RawRow{
			Row:    opts.SkipRows + i + 1,
			Metric: row[0],
			Values: row[1:],
		})
	}
	return table, nil
}

// DetectLayout tries each layout in models.Layouts order and returns the
// first one the rows fit, along with the rows cut to that layout's columns.
func DetectLayout(rows [][]string, firstCol int) (models.Layout, [][]string, error) {
	var lastErr error
	for _, layout := range models.Layouts {
		cells, err := ParseLayout(rows, firstCol, layout)
		if err == nil {
			return layout, cells, nil
		}
		var lpe *LayoutParseError
		if !errors.As(err, &lpe) {
			return 0, nil, err
		}
		lastErr = err
	}
	return 0, nil, lastErr
}

// ParseLayout cuts the layout's columns out of rows. It fails with a
// *LayoutParseError when the right-most column of the layout is not
// populated in any row.
func ParseLayout(rows [][]string, firstCol int, layout models.Layout) ([][]string, error) {
	want := layout.Width()
	if got := parser.UsedWidth(rows, firstCol); got < want {
		return nil, &LayoutParseError{Layout: layout, Want: want, Got: got}
	}
	return parser.SliceColumns(rows, firstCol, want), nil
}
