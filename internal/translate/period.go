package translate

import (
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

var monthNames = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for mon := time.January; mon <= time.December; mon++ {
		name := strings.ToLower(mon.String())
		m[name] = mon
		m[name[:3]] = mon
	}
	return m
}()

// Quarter returns the calendar quarter (1-4) containing m.
func Quarter(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// PeriodCode converts "March 2024" to the Naomi period code "2024-1".
// Month names are case-insensitive and may be abbreviated to three letters.
func PeriodCode(period string) (string, error) {
	fields := strings.Fields(period)
	if len(fields) != 2 {
		return "", eris.Wrapf(model.ErrInvalidPeriodFormat, "period %q", period)
	}
	mon, ok := monthNames[strings.ToLower(fields[0])]
	if !ok {
		return "", eris.Wrapf(model.ErrInvalidPeriodFormat, "period %q: unknown month", period)
	}
	year := fields[1]
	if len(year) != 4 || strings.Trim(year, "0123456789") != "" {
		return "", eris.Wrapf(model.ErrInvalidPeriodFormat, "period %q: year must have four digits", period)
	}
	return year + "-" + strconv.Itoa(Quarter(mon)), nil
}
