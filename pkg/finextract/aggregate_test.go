package finextract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

func periodRow(metric, amount string, quarter string) models.PeriodRow {
	return models.PeriodRow{
		Metric:       metric,
		PeriodType:   models.PeriodQuarterCurrent,
		RawAmount:    amount,
		FiscalPeriod: models.FiscalPeriod{Year: 2024, Quarter: quarter},
		Source:       "2024-" + quarter + ".xlsx",
		SourceRow:    20,
	}
}

func TestAggregator_Table(t *testing.T) {
	agg := NewAggregator()
	agg.Add([]models.PeriodRow{
		periodRow("Total net sales", "1,234", "Q1"),
		periodRow("Net income", " (56) ", "Q1"),
	})
	agg.Add([]models.PeriodRow{
		periodRow("Total net sales", "2000.5", "Q2"),
		periodRow("Net income", "", "Q2"),
	})

	assert.Equal(t, 2, agg.Files())
	assert.Equal(t, 4, agg.Len())

	table, err := agg.Table()
	require.NoError(t, err)
	require.Len(t, table, 4)

	assert.Equal(t, "1234", table[0].Amount.Decimal.String())
	assert.Equal(t, "-56", table[1].Amount.Decimal.String())
	assert.Equal(t, "2000.5", table[2].Amount.Decimal.String())
	assert.False(t, table[3].Amount.Valid)

	assert.Equal(t, "Q1", table[0].Quarter)
	assert.Equal(t, "Q2", table[2].Quarter)
}

func TestAggregator_NonNumeric(t *testing.T) {
	agg := NewAggregator()
	agg.Add([]models.PeriodRow{
		periodRow("Total net sales", "1,234", "Q1"),
		periodRow("Net income", "N/A", "Q1"),
	})

	table, err := agg.Table()
	assert.Nil(t, table)

	var ve *ValueError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "N/A", ve.Value)
	assert.Equal(t, "Net income", ve.Metric)
	assert.Equal(t, "2024-Q1.xlsx", ve.Source)
	assert.Equal(t, 20, ve.Row)
}

func TestAggregator_Empty(t *testing.T) {
	table, err := NewAggregator().Table()
	require.NoError(t, err)
	assert.Empty(t, table)
}
