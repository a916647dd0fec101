package models

import "github.com/shopspring/decimal"

// FiscalPeriod is the fiscal year and quarter a report covers.
type FiscalPeriod struct {
	Year    int    `json:"fiscal_year"`
	Quarter string `json:"fiscal_quarter"`
}

// PeriodRow is a single metric/period pair before its amount is coerced.
type PeriodRow struct {
	Metric     string `json:"metric"`
	PeriodType string `json:"period_type"`
	// RawAmount is the cell text as read from the sheet.
	RawAmount string `json:"raw_amount"`
	FiscalPeriod
	// Source and SourceRow locate the cell for error reporting.
	Source    string `json:"source"`
	SourceRow int    `json:"source_row"`
}

// NormalizedRow is one record of the master dataset.
type NormalizedRow struct {
	Metric     string `json:"metric"`
	PeriodType string `json:"period_type"`
	// Amount is null when the source cell was empty.
	Amount decimal.NullDecimal `json:"amount"`
	FiscalPeriod
}

// MasterTable holds normalized rows across all input files in encounter order.
// Duplicate metric/period/year/quarter combinations are kept.
type MasterTable []NormalizedRow
