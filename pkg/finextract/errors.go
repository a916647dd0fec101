package finextract

import (
	"errors"
	"fmt"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

// ErrSheetNotFound indicates the workbook has no sheet with the configured name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoInputFiles indicates discovery matched no workbooks.
var ErrNoInputFiles = errors.New("no input files")

// ErrLayoutMismatch indicates the sheet region does not fit a column layout.
var ErrLayoutMismatch = errors.New("column count mismatch")

// FormatKind classifies a FormatError.
type FormatKind string

const (
	// KindLayout means the region fit neither the wide nor the narrow layout.
	KindLayout FormatKind = "layout"
	// KindFilename means the file name does not follow <year>-<quarter>.<ext>.
	KindFilename FormatKind = "filename"
)

// FormatError reports an input file that cannot be extracted or normalized.
type FormatError struct {
	Path string
	Kind FormatKind
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error in %q (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a new FormatError.
func NewFormatError(path string, kind FormatKind, err error) *FormatError {
	return &FormatError{
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

// LayoutParseError reports a failed attempt to read the region with one layout.
type LayoutParseError struct {
	Layout models.Layout
	// Want is the number of columns the layout needs, Got the number populated.
	Want int
	Got  int
}

func (e *LayoutParseError) Error() string {
	return fmt.Sprintf("%s layout: expected %d columns, found %d", e.Layout, e.Want, e.Got)
}

func (e *LayoutParseError) Unwrap() error {
	return ErrLayoutMismatch
}

// ValueError reports an amount that is not numeric.
type ValueError struct {
	Source string
	Row    int
	Metric string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid amount %q for %q in %q row %d: %v", e.Value, e.Metric, e.Source, e.Row, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
