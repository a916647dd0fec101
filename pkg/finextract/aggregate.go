package finextract

import (
	"github.com/ukaji3/finextract-go/pkg/finextract/models"
	"github.com/ukaji3/finextract-go/pkg/finextract/parser"
)

// Aggregator accumulates normalized rows from every input file in the order
// they are added.
type Aggregator struct {
	rows  []models.PeriodRow
	files int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends the rows of one file.
func (a *Aggregator) Add(rows []models.PeriodRow) {
	a.rows = append(a.rows, rows...)
	a.files++
}

// Len returns the number of accumulated rows.
func (a *Aggregator) Len() int {
	return len(a.rows)
}

// Files returns how many files have been added.
func (a *Aggregator) Files() int {
	return a.files
}

// Table coerces every amount to a number and returns the master table.
// The first amount that is not numeric fails the whole table with a *ValueError.
func (a *Aggregator) Table() (models.MasterTable, error) {
	table := make(models.MasterTable, 0, len(a.rows))
	for _, row := range a.rows {
		amount, err := parser.ParseAmount(row.RawAmount)
		if err != nil {
			return nil, &ValueError{
				Source: row.Source,
				Row:    row.SourceRow,
				Metric: row.Metric,
				Value:  row.RawAmount,
				Err:    err,
			}
		}
		table = append(table, models.NormalizedRow{
			Metric:       row.Metric,
			PeriodType:   row.PeriodType,
			Amount:       amount,
			FiscalPeriod: row.FiscalPeriod,
		})
	}
	return table, nil
}
