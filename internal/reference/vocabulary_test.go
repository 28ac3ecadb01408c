package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	assert.Len(t, v.CountryNames(), 38)
	assert.Len(t, v.DREAMSCountries(), 15)
	assert.Len(t, v.StandardAgeGroups(), 12)
	assert.Equal(t, []string{"both", "female", "male"}, v.Sexes())
	assert.Equal(t, "December 2024", v.RecentPeriod())

	code, ok := v.IndicatorCode("HIV prevalence")
	require.True(t, ok)
	assert.Equal(t, "prevalence", code)

	lvl, ok := v.MaxLevel("Malawi")
	require.True(t, ok)
	assert.Equal(t, 5, lvl)

	c, ok := v.Country("Eswatini")
	require.True(t, ok)
	assert.Equal(t, "SWZ", c.ISO3)

	_, ok = v.Country("Atlantis")
	assert.False(t, ok)
}

func TestDefault_Cached(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNonANCIndicators(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	nonANC := v.NonANCIndicators()
	assert.Len(t, nonANC, 11)
	for _, name := range nonANC {
		assert.NotContains(t, name, "ANC")
	}
	assert.Len(t, v.IndicatorNames(), 19)
}

func TestAccessorsReturnCopies(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	names := v.CountryNames()
	names[0] = "mutated"
	ages := v.StandardAgeGroups()
	ages[0] = "mutated"

	assert.Equal(t, "Angola", v.CountryNames()[0])
	assert.Equal(t, "<1", v.StandardAgeGroups()[0])
}

func TestWithRecentPeriod(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	v2, err := v.WithRecentPeriod("December 2023")
	require.NoError(t, err)
	assert.Equal(t, "December 2023", v2.RecentPeriod())
	assert.Equal(t, "December 2024", v.RecentPeriod())

	same, err := v.WithRecentPeriod("")
	require.NoError(t, err)
	assert.Same(t, v, same)

	_, err = v.WithRecentPeriod("March 1999")
	assert.Error(t, err)
}

const minimalYAML = `
countries:
  - {name: Angola, iso3: AGO, max_level: 2}
indicators:
  - {name: PLHIV, code: plhiv}
sexes: [both]
age_groups: ["15-49"]
periods: [December 2022, December 2023]
`

func TestParse_RecentDefaultsToLastPeriod(t *testing.T) {
	v, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "December 2023", v.RecentPeriod())
	assert.Empty(t, v.DREAMSCountries())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "countries: [\n"},
		{"no countries", "indicators: [{name: a, code: a}]"},
		{"duplicate country", `
countries:
  - {name: Angola, iso3: AGO}
  - {name: Angola, iso3: AGO}
indicators: [{name: a, code: a}]
sexes: [both]
age_groups: ["15-49"]
periods: [December 2023]
`},
		{"standard age not in ages", `
countries: [{name: Angola, iso3: AGO}]
indicators: [{name: a, code: a}]
sexes: [both]
standard_age_groups: ["<1"]
age_groups: ["15-49"]
periods: [December 2023]
`},
		{"unknown recent period", `
recent_period: March 1999
countries: [{name: Angola, iso3: AGO}]
indicators: [{name: a, code: a}]
sexes: [both]
age_groups: ["15-49"]
periods: [December 2023]
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Angola"}, v.CountryNames())

	def, err := Load("")
	require.NoError(t, err)
	assert.Len(t, def.CountryNames(), 38)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
