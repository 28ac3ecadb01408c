package filter

import (
	"regexp"
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
)

// Dimension names one of the five filter dimensions.
type Dimension string

const (
	Countries  Dimension = "countries"
	Indicators Dimension = "indicators"
	AgeGroups  Dimension = "age_groups"
	Sexes      Dimension = "sex_options"
	Periods    Dimension = "periods"
)

// FilterSet is the caller's request before resolution.
type FilterSet struct {
	Countries    Selection
	Indicators   Selection
	AgeGroups    Selection
	Sexes        Selection
	Periods      Selection
	AreaLevelCap model.AreaLevel
}

// Resolved holds validated, keyword-free values for every dimension.
type Resolved struct {
	Countries    []string
	Indicators   []string
	AgeGroups    []string
	Sexes        []string
	Periods      []string
	AreaLevelCap model.AreaLevel
}

// Resolve expands and validates every dimension of f, stopping at the first
// invalid value. When verbose is set a confirmation is logged on success.
func (f FilterSet) Resolve(v *reference.Vocabulary, verbose bool) (Resolved, error) {
	var (
		out Resolved
		err error
	)
	steps := []struct {
		dim Dimension
		sel Selection
		dst *[]string
	}{
		{Countries, f.Countries, &out.Countries},
		{Indicators, f.Indicators, &out.Indicators},
		{AgeGroups, f.AgeGroups, &out.AgeGroups},
		{Sexes, f.Sexes, &out.Sexes},
		{Periods, f.Periods, &out.Periods},
	}
	for _, s := range steps {
		if *s.dst, err = ResolveDimension(s.sel, s.dim, v); err != nil {
			return Resolved{}, err
		}
	}
	out.AreaLevelCap = f.AreaLevelCap

	if verbose {
		zap.L().Info("all parameters valid",
			zap.Int("countries", len(out.Countries)),
			zap.Int("indicators", len(out.Indicators)),
			zap.Int("age_groups", len(out.AgeGroups)),
			zap.Int("sex_options", len(out.Sexes)),
			zap.Int("periods", len(out.Periods)),
			zap.Stringer("max_level", out.AreaLevelCap),
		)
	}
	return out, nil
}

// ResolveDimension expands sel for dim and validates the result.
func ResolveDimension(sel Selection, dim Dimension, v *reference.Vocabulary) ([]string, error) {
	values, err := Expand(sel, dim, v)
	if err != nil {
		return nil, err
	}
	if err := Validate(values, vocabularyFor(dim, v), dim); err != nil {
		return nil, err
	}
	return values, nil
}

// Expand returns the keyword expansion of sel, or its explicit values with
// duplicates removed. Keywords that mean nothing for dim are rejected.
func Expand(sel Selection, dim Dimension, v *reference.Vocabulary) ([]string, error) {
	k, ok := sel.Keyword()
	if !ok {
		values := dedupe(sel.Values())
		if len(values) == 0 {
			return nil, eris.Wrapf(model.ErrInvalidParameter, "%s: no values given", dim)
		}
		return values, nil
	}

	switch {
	case k == KeywordAll:
		return vocabularyFor(dim, v), nil
	case dim == Countries && k == KeywordDREAMS:
		return v.DREAMSCountries(), nil
	case dim == AgeGroups && k == KeywordStandard:
		return v.StandardAgeGroups(), nil
	case dim == Periods && k == KeywordRecent:
		return []string{v.RecentPeriod()}, nil
	case dim == Indicators && k == KeywordNoANC:
		return v.NonANCIndicators(), nil
	}
	return nil, &model.InvalidParameterError{Field: string(dim), Value: string(k)}
}

func vocabularyFor(dim Dimension, v *reference.Vocabulary) []string {
	switch dim {
	case Countries:
		return v.CountryNames()
	case Indicators:
		return v.IndicatorNames()
	case AgeGroups:
		return v.AgeGroups()
	case Sexes:
		return v.Sexes()
	case Periods:
		return v.Periods()
	}
	return nil
}

var periodPattern = regexp.MustCompile(`^[A-Za-z]+ \d{4}$`)

// Validate fails on the first value absent from vocabulary, suggesting the
// closest entry when one is within MaxSuggestDistance edits. Periods must
// also look like "March 2024".
func Validate(values, vocabulary []string, dim Dimension) error {
	for _, val := range values {
		if dim == Periods && !periodPattern.MatchString(val) {
			return eris.Wrapf(model.ErrInvalidPeriodFormat, "%s: %q must look like \"March 2024\"", dim, val)
		}
		if slices.Contains(vocabulary, val) {
			continue
		}
		return &model.InvalidParameterError{
			Field:      string(dim),
			Value:      val,
			Suggestion: Suggest(val, vocabulary),
		}
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
