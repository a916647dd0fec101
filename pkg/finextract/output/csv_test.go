package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
)

func sampleTable() models.MasterTable {
	q3 := models.FiscalPeriod{Year: 2024, Quarter: "Q3"}
	return models.MasterTable{
		{Metric: "Total net sales", PeriodType: models.PeriodQuarterCurrent, Amount: decimal.NewNullDecimal(decimal.NewFromInt(94930)), FiscalPeriod: q3},
		{Metric: "Selling, general and administrative", PeriodType: models.PeriodQuarterPrior, Amount: decimal.NewNullDecimal(decimal.RequireFromString("-5.5")), FiscalPeriod: q3},
		{Metric: "Net income", PeriodType: models.PeriodYTDCurrent, FiscalPeriod: q3},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Metric", "Period_Type_Raw", "Amount", "Fiscal Year", "Fiscal Quarter"}, records[0])
	assert.Equal(t, []string{"Total net sales", models.PeriodQuarterCurrent, "94930", "2024", "Q3"}, records[1])
	assert.Equal(t, []string{"Selling, general and administrative", models.PeriodQuarterPrior, "-5.5", "2024", "Q3"}, records[2])
	assert.Equal(t, "", records[3][2], "null amount is written as an empty field")
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Metric,Period_Type_Raw,Amount,Fiscal Year,Fiscal Quarter\n", buf.String())
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nested", "master.csv")

	require.NoError(t, WriteFile(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"Selling, general and administrative\"")
	assert.Contains(t, string(data), "Total net sales,"+models.PeriodQuarterCurrent+",94930,2024,Q3")
}
