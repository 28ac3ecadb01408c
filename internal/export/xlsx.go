package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// Sheet names in an xlsx export.
const (
	DataSheet     = "data"
	FailuresSheet = "failures"
)

// WriteXLSX writes data to a "data" sheet and, when present, failures to a
// "failures" sheet. Numeric columns are stored as numbers.
func WriteXLSX(path string, data *model.Table, failures []model.FailureRecord) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(DataSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx export: add data sheet")
	}
	addStringRow(sheet, model.Columns)
	if data != nil {
		for _, r := range data.Rows {
			row := sheet.AddRow()
			row.AddCell().SetString(r.Country)
			row.AddCell().SetString(r.Area)
			setInt(row.AddCell(), r.Level)
			row.AddCell().SetString(r.Indicator)
			row.AddCell().SetString(r.AgeGroup)
			row.AddCell().SetString(r.Sex)
			row.AddCell().SetString(r.Period)
			row.AddCell().SetString(r.PeriodYearQuarter)
			setFloat(row.AddCell(), r.Mean)
			setFloat(row.AddCell(), r.Lower)
			setFloat(row.AddCell(), r.Upper)
		}
	}

	if len(failures) > 0 {
		fs, err := file.AddSheet(FailuresSheet)
		if err != nil {
			return eris.Wrap(err, "xlsx export: add failures sheet")
		}
		addStringRow(fs, model.FailureColumns)
		for _, f := range failures {
			addStringRow(fs, f.Record())
		}
	}

	return eris.Wrap(file.Save(path), "xlsx export: save")
}

func addStringRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func setInt(c *xlsx.Cell, v *int) {
	if v == nil {
		c.SetString("")
		return
	}
	c.SetInt(*v)
}

func setFloat(c *xlsx.Cell, v *float64) {
	if v == nil {
		c.SetString("")
		return
	}
	c.SetFloat(*v)
}
