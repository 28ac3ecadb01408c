package naomi

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/fetcher"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// annotate converts one CSV response body into result rows carrying the
// request's metadata. The country column is forward-filled from level 0 rows.
func annotate(ctx context.Context, req model.AtomicRequest, body []byte) (*model.Table, error) {
	raw, err := fetcher.ParseTable(ctx, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	areaCol := "area"
	if !raw.HasColumn(areaCol) && raw.HasColumn("area_name") {
		areaCol = "area_name"
	}

	t := &model.Table{Rows: make([]model.Row, 0, len(raw.Rows))}
	var (
		country  string
		orphaned int
	)
	for i := range raw.Rows {
		row := model.Row{
			Area:              raw.Get(i, areaCol),
			Level:             parseInt(raw.Get(i, "level")),
			Indicator:         req.IndicatorCode,
			AgeGroup:          req.AgeGroup,
			Sex:               req.Sex,
			Period:            req.Period,
			PeriodYearQuarter: req.PeriodCode,
			Mean:              parseFloat(raw.Get(i, "mean")),
			Lower:             parseFloat(raw.Get(i, "lower")),
			Upper:             parseFloat(raw.Get(i, "upper")),
		}
		if row.Level != nil && *row.Level == 0 {
			country = row.Area
		}
		if country == "" {
			orphaned++
		}
		row.Country = country
		t.Rows = append(t.Rows, row)
	}

	if orphaned > 0 {
		zap.L().Warn("naomi: rows precede any country-level row",
			zap.Int("index", req.Index),
			zap.Int("rows", orphaned),
			zap.String("url", req.URL),
		)
	}
	return t, nil
}

// parseInt accepts integral values written as floats ("1.0").
func parseInt(s string) *int {
	f := parseFloat(s)
	if f == nil || *f != float64(int(*f)) {
		return nil
	}
	n := int(*f)
	return &n
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "null") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
