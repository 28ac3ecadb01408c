package naomi

import (
	"time"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/filter"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// Query is the caller's view of a pull. Each list is either a single
// keyword ("all", "dreams", "standard", "recent", "no anc") or explicit
// vocabulary values. Empty lists take the defaults below.
type Query struct {
	Countries  []string
	Indicators []string
	AgeGroups  []string
	Sexes      []string
	Periods    []string
	// MaxLevel caps area depth: an integer, or "none" for each country's deepest level.
	MaxLevel string
	Verbose  bool
	Export   bool
	// Wait overrides the client's pause between requests when positive.
	Wait time.Duration
}

// Default selections for empty Query lists.
var (
	DefaultCountries  = filter.Select(filter.KeywordAll)
	DefaultIndicators = filter.Select(filter.KeywordAll)
	DefaultAgeGroups  = filter.Select(filter.KeywordStandard)
	DefaultSexes      = filter.Select(filter.KeywordAll)
	DefaultPeriods    = filter.Select(filter.KeywordRecent)
)

// FilterSet parses q into typed selections.
func (q Query) FilterSet() (filter.FilterSet, error) {
	level, err := model.ParseAreaLevel(q.MaxLevel)
	if err != nil {
		return filter.FilterSet{}, err
	}
	return filter.FilterSet{
		Countries:    selection(q.Countries, DefaultCountries),
		Indicators:   selection(q.Indicators, DefaultIndicators),
		AgeGroups:    selection(q.AgeGroups, DefaultAgeGroups),
		Sexes:        selection(q.Sexes, DefaultSexes),
		Periods:      selection(q.Periods, DefaultPeriods),
		AreaLevelCap: level,
	}, nil
}

func selection(raw []string, def filter.Selection) filter.Selection {
	sel := filter.Parse(raw)
	if sel.IsZero() {
		return def
	}
	return sel
}
