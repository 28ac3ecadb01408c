// Package translate maps human-readable filter values to Naomi API codes.
package translate

import (
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
)

// countryOverrides replaces the ISO3 code where the Naomi dataset disagrees.
var countryOverrides = map[string]string{
	"Eswatini": "ESW",
}

// CountryCode returns the Naomi code for a country name.
func CountryCode(name string, v *reference.Vocabulary) (string, bool) {
	if code, ok := countryOverrides[name]; ok {
		return code, true
	}
	c, ok := v.Country(name)
	if !ok {
		return "", false
	}
	return c.ISO3, true
}

// CountryCodes translates names in order. Unmapped names are dropped and
// reported together in one warning.
func CountryCodes(names []string, v *reference.Vocabulary) []string {
	codes := make([]string, 0, len(names))
	var unmapped []string
	for _, name := range names {
		code, ok := CountryCode(name, v)
		if !ok {
			unmapped = append(unmapped, name)
			continue
		}
		codes = append(codes, code)
	}
	if len(unmapped) > 0 {
		zap.L().Warn("unrecognised country names, skipping", zap.Strings("countries", unmapped))
	}
	return codes
}
