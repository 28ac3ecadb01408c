package model

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// AreaLevel is a caller-supplied cap on administrative depth.
// The zero value means "no cap".
type AreaLevel struct {
	Level int
	Set   bool
}

// NoAreaCap is the uncapped area level.
var NoAreaCap = AreaLevel{}

// CapAt returns an AreaLevel capped at n.
func CapAt(n int) AreaLevel {
	return AreaLevel{Level: n, Set: true}
}

// ParseAreaLevel parses "none" (or "") as no cap, otherwise a non-negative integer.
func ParseAreaLevel(s string) (AreaLevel, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return NoAreaCap, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return AreaLevel{}, &InvalidParameterError{Field: "max_level", Value: s}
	}
	return CapAt(n), nil
}

// Resolve returns the effective depth for a country whose maximum is max.
func (a AreaLevel) Resolve(max int) int {
	if a.Set && a.Level < max {
		return a.Level
	}
	return max
}

func (a AreaLevel) String() string {
	if !a.Set {
		return "none"
	}
	return strconv.Itoa(a.Level)
}

// AtomicRequest is one fully-specified query against the Naomi API.
// Countries are carried as a list because the API accepts several per call.
type AtomicRequest struct {
	Index         int      `json:"index"`
	Countries     []string `json:"countries"`
	CountryCodes  []string `json:"country_codes"`
	Indicator     string   `json:"indicator"`
	IndicatorCode string   `json:"indicator_code"`
	AgeGroup      string   `json:"age_group"`
	AgeCode       string   `json:"age_code"`
	Sex           string   `json:"sex"`
	SexCode       string   `json:"sex_code"`
	Period        string   `json:"period"`
	PeriodCode    string   `json:"period_code"`
	AreaLevel     int      `json:"area_level"`
	URL           string   `json:"url"`
}

// Failure builds the failure record for this request.
func (r AtomicRequest) Failure(status int, reason string, transient bool) FailureRecord {
	return FailureRecord{
		Period:        r.Period,
		AgeGroup:      r.AgeGroup,
		Sex:           r.Sex,
		IndicatorCode: r.IndicatorCode,
		URL:           r.URL,
		Status:        status,
		Reason:        reason,
		Transient:     transient,
	}
}

// MissingCode reports the first empty code on the request, or nil.
func (r AtomicRequest) MissingCode() error {
	switch {
	case len(r.CountryCodes) == 0:
		return eris.Wrap(ErrMissingCode, "country")
	case r.IndicatorCode == "":
		return eris.Wrapf(ErrMissingCode, "indicator %q", r.Indicator)
	case r.AgeCode == "":
		return eris.Wrapf(ErrMissingCode, "age group %q", r.AgeGroup)
	case r.SexCode == "":
		return eris.Wrapf(ErrMissingCode, "sex %q", r.Sex)
	case r.PeriodCode == "":
		return eris.Wrapf(ErrMissingCode, "period %q", r.Period)
	}
	return nil
}
