// Package finextract extracts income statement line items from earnings
// report workbooks and consolidates them into one long-form dataset.
package finextract

// Defaults for the fixed income statement region.
const (
	DefaultSheetName   = "INCOME_STATEMENT"
	DefaultSkipRows    = 18
	DefaultFirstColumn = "B"
	DefaultPattern     = "*.xls*"
	DefaultInputDir    = "data"
	DefaultOutputPath  = "master_financials.csv"
)

// DefaultMetrics is the allow-list of line items kept by Normalize.
var DefaultMetrics = []string{
	"Products",
	"Services",
	"Total net sales",
	"Gross margin",
	"Research and development",
	"Selling, general and administrative",
	"Total operating expenses",
	"Operating income",
	"Net income",
}

// Options configures extraction and pipeline behavior.
type Options struct {
	// InputDir is the directory scanned for workbooks.
	InputDir string
	// Pattern is the glob matched against file names in InputDir.
	Pattern string
	// OutputPath is where the master CSV is written.
	OutputPath string
	// SheetName is the sheet holding the income statement.
	SheetName string
	// SkipRows is the number of sheet rows above the region.
	SkipRows int
	// FirstColumn is the column holding metric labels.
	FirstColumn string
	// Metrics is the allow-list of metric names.
	// If nil, DefaultMetrics is used.
	Metrics []string
	// Workers bounds how many files are extracted at once.
	// Values below 1 mean sequential processing.
	Workers int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		InputDir:    DefaultInputDir,
		Pattern:     DefaultPattern,
		OutputPath:  DefaultOutputPath,
		SheetName:   DefaultSheetName,
		SkipRows:    DefaultSkipRows,
		FirstColumn: DefaultFirstColumn,
		Workers:     1,
	}
}

// AllowedMetrics returns the metric allow-list in effect.
func (o Options) AllowedMetrics() []string {
	if o.Metrics != nil {
		return o.Metrics
	}
	return DefaultMetrics
}

// WorkerCount returns the effective number of concurrent file workers.
func (o Options) WorkerCount() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
