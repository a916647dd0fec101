package finextract

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

// MetricSummary holds descriptive statistics of one metric's amounts.
type MetricSummary struct {
	Metric string  `json:"metric"`
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes per-metric statistics over non-null amounts. Metrics
// are ordered as in metrics; those without any amount are omitted.
func Summarize(table models.MasterTable, metrics []string) ([]MetricSummary, error) {
	values := make(map[string]stats.Float64Data)
	for _, row := range table {
		if !row.Amount.Valid {
			continue
		}
		values[row.Metric] = append(values[row.Metric], row.Amount.Decimal.InexactFloat64())
	}

	var result []MetricSummary
	for _, metric := range metrics {
		data := values[metric]
		if len(data) == 0 {
			continue
		}
		sum, err := data.Sum()
		if err != nil {
			return nil, err
		}
		mean, err := data.Mean()
		if err != nil {
			return nil, err
		}
		lo, err := data.Min()
		if err != nil {
			return nil, err
		}
		hi, err := data.Max()
		if err != nil {
			return nil, err
		}
		result = append(result, MetricSummary{
			Metric: metric,
			Count:  data.Len(),
			Sum:    sum,
			Mean:   mean,
			Min:    lo,
			Max:    hi,
		})
	}
	return result, nil
}
