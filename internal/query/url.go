package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// BuildURL renders req as a GET URL against base. Every value is escaped on
// its own; several countries repeat the country parameter.
func BuildURL(base string, req model.AtomicRequest) (string, error) {
	if err := req.MissingCode(); err != nil {
		return "", eris.Wrap(err, "build url")
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('?')
	for i, code := range req.CountryCodes {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString("country=")
		b.WriteString(url.QueryEscape(code))
	}
	params := []struct{ key, value string }{
		{"indicator", req.IndicatorCode},
		{"ageGroup", req.AgeCode},
		{"period", req.PeriodCode},
		{"sex", req.SexCode},
		{"areaLevel", strconv.Itoa(req.AreaLevel)},
	}
	for _, p := range params {
		b.WriteByte('&')
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String(), nil
}
