package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/filter"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
)

const testBase = "https://naomi.example.org/api/v1/data"

func testVocab(t *testing.T) *reference.Vocabulary {
	t.Helper()
	v, err := reference.Default()
	require.NoError(t, err)
	return v
}

func resolve(t *testing.T, fs filter.FilterSet) filter.Resolved {
	t.Helper()
	r, err := fs.Resolve(testVocab(t), false)
	require.NoError(t, err)
	return r
}

func TestExpand_Cardinality(t *testing.T) {
	v := testVocab(t)
	tests := []struct {
		name string
		fs   filter.FilterSet
	}{
		{"single", filter.FilterSet{
			Countries: filter.Explicit("Angola"), Indicators: filter.Explicit("PLHIV"),
			AgeGroups: filter.Explicit("15-49"), Sexes: filter.Explicit("both"), Periods: filter.Explicit("December 2023"),
		}},
		{"standard ages all sexes", filter.FilterSet{
			Countries: filter.Select(filter.KeywordDREAMS), Indicators: filter.Explicit("PLHIV", "HIV prevalence"),
			AgeGroups: filter.Select(filter.KeywordStandard), Sexes: filter.Select(filter.KeywordAll), Periods: filter.Select(filter.KeywordRecent),
		}},
		{"no anc many periods", filter.FilterSet{
			Countries: filter.Select(filter.KeywordAll), Indicators: filter.Select(filter.KeywordNoANC),
			AgeGroups: filter.Explicit("all ages"), Sexes: filter.Explicit("female", "male"),
			Periods: filter.Explicit("December 2022", "December 2023", "June 2024"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolve(t, tt.fs)
			reqs, err := Expand(r, v, testBase)
			require.NoError(t, err)
			want := len(r.AgeGroups) * len(r.Sexes) * len(r.Indicators) * len(r.Periods)
			assert.Len(t, reqs, want)
			for i, req := range reqs {
				assert.Equal(t, i, req.Index)
				assert.Len(t, req.CountryCodes, len(r.Countries))
				assert.NotEmpty(t, req.URL)
			}
		})
	}
}

func TestExpand_OrderIsStable(t *testing.T) {
	v := testVocab(t)
	r := resolve(t, filter.FilterSet{
		Countries:  filter.Explicit("Kenya"),
		Indicators: filter.Explicit("PLHIV", "ART coverage"),
		AgeGroups:  filter.Explicit("15-24", "25-49"),
		Sexes:      filter.Explicit("female", "male"),
		Periods:    filter.Explicit("December 2022", "December 2023"),
	})

	first, err := Expand(r, v, testBase)
	require.NoError(t, err)
	second, err := Expand(r, v, testBase)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Periods vary fastest, age groups slowest.
	assert.Equal(t, "December 2022", first[0].Period)
	assert.Equal(t, "December 2023", first[1].Period)
	assert.Equal(t, "ART coverage", first[2].Indicator)
	assert.Equal(t, "male", first[4].Sex)
	assert.Equal(t, "25-49", first[8].AgeGroup)
	assert.Equal(t, "Y025_049", first[8].AgeCode)
}

func TestExpand_Codes(t *testing.T) {
	v := testVocab(t)
	r := resolve(t, filter.FilterSet{
		Countries:  filter.Explicit("Eswatini", "Lesotho"),
		Indicators: filter.Explicit("HIV prevalence"),
		AgeGroups:  filter.Explicit("50+"),
		Sexes:      filter.Explicit("female"),
		Periods:    filter.Explicit("March 2023"),
	})
	reqs, err := Expand(r, v, testBase)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	req := reqs[0]
	assert.Equal(t, []string{"ESW", "LSO"}, req.CountryCodes)
	assert.Equal(t, "prevalence", req.IndicatorCode)
	assert.Equal(t, "Y050_999", req.AgeCode)
	assert.Equal(t, "female", req.SexCode)
	assert.Equal(t, "2023-1", req.PeriodCode)
	assert.Equal(t, 2, req.AreaLevel)
	assert.Equal(t, testBase+"?country=ESW&country=LSO&indicator=prevalence&ageGroup=Y050_999&period=2023-1&sex=female&areaLevel=2", req.URL)
}

func TestAreaLevel(t *testing.T) {
	v := testVocab(t)
	assert.Equal(t, 5, AreaLevel([]string{"Malawi"}, model.NoAreaCap, v))
	assert.Equal(t, 2, AreaLevel([]string{"Malawi"}, model.CapAt(2), v))
	assert.Equal(t, 1, AreaLevel([]string{"Lesotho"}, model.CapAt(3), v))
	assert.Equal(t, 3, AreaLevel([]string{"Lesotho", "Uganda"}, model.NoAreaCap, v))
	assert.Equal(t, 0, AreaLevel([]string{"Uganda"}, model.CapAt(0), v))
}

func TestExpand_UntranslatableAge(t *testing.T) {
	v := testVocab(t)
	_, err := Expand(filter.Resolved{
		Countries:  []string{"Angola"},
		Indicators: []string{"PLHIV"},
		AgeGroups:  []string{"adults"},
		Sexes:      []string{"both"},
		Periods:    []string{"December 2023"},
	}, v, testBase)
	assert.True(t, errors.Is(err, model.ErrInvalidAgeFormat))
}

func TestExpand_NoCountryCodes(t *testing.T) {
	v := testVocab(t)
	_, err := Expand(filter.Resolved{
		Countries:  []string{"Atlantis"},
		Indicators: []string{"PLHIV"},
		AgeGroups:  []string{"15-49"},
		Sexes:      []string{"both"},
		Periods:    []string{"December 2023"},
	}, v, testBase)
	assert.True(t, errors.Is(err, model.ErrMissingCode))
}

func TestExpand_UnknownIndicator(t *testing.T) {
	v := testVocab(t)
	_, err := Expand(filter.Resolved{
		Countries:  []string{"Angola"},
		Indicators: []string{"Not real"},
		AgeGroups:  []string{"15-49"},
		Sexes:      []string{"both"},
		Periods:    []string{"December 2023"},
	}, v, testBase)
	assert.True(t, errors.Is(err, model.ErrMissingCode))
}

func TestBuildURL_Escaping(t *testing.T) {
	req := model.AtomicRequest{
		CountryCodes:  []string{"A&B", "C D", "E'F"},
		IndicatorCode: "x=y",
		AgeCode:       "Y015_049",
		SexCode:       "both",
		PeriodCode:    "2023-4",
		AreaLevel:     1,
	}
	u, err := BuildURL(testBase, req)
	require.NoError(t, err)
	assert.Equal(t, testBase+"?country=A%26B&country=C+D&country=E%27F&indicator=x%3Dy&ageGroup=Y015_049&period=2023-4&sex=both&areaLevel=1", u)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, []string{"A&B", "C D", "E'F"}, q["country"])
	assert.Equal(t, "x=y", q.Get("indicator"))
}

func TestBuildURL_MissingCode(t *testing.T) {
	_, err := BuildURL(testBase, model.AtomicRequest{CountryCodes: []string{"AGO"}})
	assert.True(t, errors.Is(err, model.ErrMissingCode))
}
