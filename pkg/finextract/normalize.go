package finextract

import (
	"github.com/ukaji3/finextract-go/pkg/finextract/models"
	"github.com/ukaji3/finextract-go/pkg/finextract/parser"
)

// Normalize filters a raw table to the allowed metrics and reshapes it to one
// row per metric and period, stamped with the fiscal period parsed from the
// table's source file name.
//
// Rows are emitted period by period: every retained metric for the first
// period column, then every retained metric for the next.
func Normalize(table *models.RawTable, opts Options) ([]models.PeriodRow, error) {
	period, err := ParseFiscalPeriod(table.Source)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool)
	for _, m := range opts.AllowedMetrics() {
		allowed[m] = true
	}

	var kept []models.RawRow
	for _, row := range table.Rows {
		if parser.IsBlank(row.Values) {
			continue
		}
		metric := parser.CleanMetric(row.Metric)
		if !allowed[metric] {
			continue
		}
		row.Metric = metric
		kept = append(kept, row)
	}

	periods := table.Periods()
	result := make([]models.PeriodRow, 0, len(kept)*len(periods))
	for col, periodType := range periods {
		for _, row := range kept {
			var amount string
			if col < len(row.Values) {
				amount = row.Values[col]
			}
			result = append(result, models.PeriodRow{
				Metric:       row.Metric,
				PeriodType:   periodType,
				RawAmount:    amount,
				FiscalPeriod: period,
				Source:       table.Source,
				SourceRow:    row.Row,
			})
		}
	}
	return result, nil
}
