package model

import "strconv"

// Columns is the output column order of a result table.
var Columns = []string{
	"country",
	"area",
	"level",
	"indicator",
	"age_group",
	"sex",
	"period",
	"period_year_quarter",
	"mean",
	"lower",
	"upper",
}

// Row is one estimate for an area, indicator, age group, sex and period.
// Numeric fields are nil when the API returned an unparseable cell.
type Row struct {
	Country           string   `json:"country"`
	Area              string   `json:"area"`
	Level             *int     `json:"level"`
	Indicator         string   `json:"indicator"`
	AgeGroup          string   `json:"age_group"`
	Sex               string   `json:"sex"`
	Period            string   `json:"period"`
	PeriodYearQuarter string   `json:"period_year_quarter"`
	Mean              *float64 `json:"mean"`
	Lower             *float64 `json:"lower"`
	Upper             *float64 `json:"upper"`
}

// Record renders the row in Columns order. Missing numbers render empty.
func (r Row) Record() []string {
	return []string{
		r.Country,
		r.Area,
		formatInt(r.Level),
		r.Indicator,
		r.AgeGroup,
		r.Sex,
		r.Period,
		r.PeriodYearQuarter,
		formatFloat(r.Mean),
		formatFloat(r.Lower),
		formatFloat(r.Upper),
	}
}

// Table is an ordered set of rows.
type Table struct {
	Rows []Row `json:"rows"`
}

// Len returns the row count; nil tables are empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Append adds all rows of other after the rows of t.
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Records renders the table as string records without a header.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, t.Len())
	if t == nil {
		return out
	}
	for _, r := range t.Rows {
		out = append(out, r.Record())
	}
	return out
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
