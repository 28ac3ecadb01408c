// Package query turns resolved filters into atomic Naomi API requests.
package query

import (
	"github.com/rotisserie/eris"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/filter"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/translate"
)

// DefaultBaseURL is the Naomi viewer data endpoint.
const DefaultBaseURL = "https://naomiviewerserver.azurewebsites.net/api/v1/data"

// Expand builds one request per age group × sex × indicator × period, in that
// nesting order, with every request covering all resolved countries. URLs
// are rendered against baseURL.
func Expand(f filter.Resolved, v *reference.Vocabulary, baseURL string) ([]model.AtomicRequest, error) {
	codes := translate.CountryCodes(f.Countries, v)
	if len(codes) == 0 {
		return nil, eris.Wrap(model.ErrMissingCode, "query: no country could be translated")
	}
	level := AreaLevel(f.Countries, f.AreaLevelCap, v)

	ageCodes := make(map[string]string, len(f.AgeGroups))
	for _, age := range f.AgeGroups {
		code, err := translate.AgeCode(age)
		if err != nil {
			return nil, eris.Wrap(err, "query")
		}
		ageCodes[age] = code
	}
	periodCodes := make(map[string]string, len(f.Periods))
	for _, p := range f.Periods {
		code, err := translate.PeriodCode(p)
		if err != nil {
			return nil, eris.Wrap(err, "query")
		}
		periodCodes[p] = code
	}

	total := len(f.AgeGroups) * len(f.Sexes) * len(f.Indicators) * len(f.Periods)
	out := make([]model.AtomicRequest, 0, total)
	for _, age := range f.AgeGroups {
		for _, sex := range f.Sexes {
			for _, ind := range f.Indicators {
				indCode, _ := v.IndicatorCode(ind)
				for _, period := range f.Periods {
					req := model.AtomicRequest{
						Index:         len(out),
						Countries:     f.Countries,
						CountryCodes:  codes,
						Indicator:     ind,
						IndicatorCode: indCode,
						AgeGroup:      age,
						AgeCode:       ageCodes[age],
						Sex:           sex,
						SexCode:       translate.SexCode(sex),
						Period:        period,
						PeriodCode:    periodCodes[period],
						AreaLevel:     level,
					}
					u, err := BuildURL(baseURL, req)
					if err != nil {
						return nil, err
					}
					req.URL = u
					out = append(out, req)
				}
			}
		}
	}
	return out, nil
}

// AreaLevel is the depth requested for a set of countries: the deepest
// level any of them publishes, limited by the caller's cap.
func AreaLevel(countries []string, limit model.AreaLevel, v *reference.Vocabulary) int {
	deepest := 0
	for _, c := range countries {
		if lvl, ok := v.MaxLevel(c); ok && lvl > deepest {
			deepest = lvl
		}
	}
	return limit.Resolve(deepest)
}
