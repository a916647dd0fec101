// Package models defines data structures for income statement extraction.
package models

// Layout identifies one of the two fixed column layouts of an income statement sheet.
type Layout int

const (
	// LayoutWide exposes four period columns: current and prior quarter,
	// current and prior year to date.
	LayoutWide Layout = iota
	// LayoutNarrow exposes only the current and prior quarter, as seen in
	// first fiscal quarter filings.
	LayoutNarrow
)

// Period labels used as column headers and as PeriodType values.
const (
	PeriodQuarterCurrent = "Three Months Ended (Current)"
	PeriodQuarterPrior   = "Three Months Ended (Prior Year)"
	PeriodYTDCurrent     = "Year to Date (Current)"
	PeriodYTDPrior       = "Year to Date (Prior Year)"
)

// MetricColumn is the header of the metric label column.
const MetricColumn = "Metric"

// Layouts lists the layouts in the order they are attempted.
var Layouts = []Layout{LayoutWide, LayoutNarrow}

func (l Layout) String() string {
	switch l {
	case LayoutWide:
		return "wide"
	case LayoutNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Periods returns the period labels exposed by the layout, in sheet column order.
func (l Layout) Periods() []string {
	switch l {
	case LayoutWide:
		return []string{PeriodQuarterCurrent, PeriodQuarterPrior, PeriodYTDCurrent, PeriodYTDPrior}
	case LayoutNarrow:
		return []string{PeriodQuarterCurrent, PeriodQuarterPrior}
	default:
		return nil
	}
}

// Width is the number of sheet columns the layout spans, metric label included.
func (l Layout) Width() int {
	return len(l.Periods()) + 1
}

// Columns returns the table header for the layout: the metric column followed by the periods.
func (l Layout) Columns() []string {
	return append([]string{MetricColumn}, l.Periods()...)
}
