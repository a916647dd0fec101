package models

// RawRow is one metric row read from the sheet region.
type RawRow struct {
	// Row is the 1-based sheet row the values were read from.
	Row int `json:"row"`
	// Metric is the label cell as found in the sheet.
	Metric string `json:"metric"`
	// Values holds one raw cell text per period column.
	Values []string `json:"values"`
}

// RawTable is the fixed region of one workbook after layout detection.
type RawTable struct {
	// Source is the path of the workbook the table was read from.
	Source string `json:"source"`
	// Layout is the layout the region was parsed with.
	Layout Layout `json:"layout"`
	// Columns is the header: MetricColumn followed by the period labels.
	Columns []string `json:"columns"`
	// Rows contains the rows of the region in sheet order.
	Rows []RawRow `json:"rows"`
}

// Periods returns the period labels of the table.
func (t *RawTable) Periods() []string {
	if len(t.Columns) == 0 {
		return nil
	}
	return t.Columns[1:]
}
