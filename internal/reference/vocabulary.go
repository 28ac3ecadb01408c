// Package reference loads the static Naomi vocabularies: countries with their
// ISO codes and area depth, indicators with their API codes, sexes, age groups
// and periods.
package reference

import (
	_ "embed"
	"os"
	"slices"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var defaultYAML []byte

// Country is one country published by Naomi.
type Country struct {
	Name     string `yaml:"name"`
	ISO3     string `yaml:"iso3"`
	MaxLevel int    `yaml:"max_level"`
	DREAMS   bool   `yaml:"dreams"`
}

// Indicator is one Naomi indicator and its API code.
type Indicator struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
	ANC  bool   `yaml:"anc"`
}

// document is the on-disk shape of a vocabulary file.
type document struct {
	RecentPeriod      string      `yaml:"recent_period"`
	Countries         []Country   `yaml:"countries"`
	Indicators        []Indicator `yaml:"indicators"`
	Sexes             []string    `yaml:"sexes"`
	StandardAgeGroups []string    `yaml:"standard_age_groups"`
	AgeGroups         []string    `yaml:"age_groups"`
	Periods           []string    `yaml:"periods"`
}

// Vocabulary is the immutable set of lookup tables. Accessors return copies,
// so a Vocabulary can be shared between goroutines.
type Vocabulary struct {
	doc        document
	countries  map[string]Country
	indicators map[string]Indicator
}

// Parse decodes and validates a YAML vocabulary document.
func Parse(data []byte) (*Vocabulary, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "reference: decode yaml")
	}
	return build(doc)
}

// Load reads a vocabulary from path. An empty path returns the embedded default.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reference: read %s", path)
	}
	return Parse(data)
}

var loadDefault = sync.OnceValues(func() (*Vocabulary, error) {
	return Parse(defaultYAML)
})

// Default returns the embedded vocabulary, parsed once per process.
func Default() (*Vocabulary, error) {
	return loadDefault()
}

func build(doc document) (*Vocabulary, error) {
	switch {
	case len(doc.Countries) == 0:
		return nil, eris.New("reference: no countries")
	case len(doc.Indicators) == 0:
		return nil, eris.New("reference: no indicators")
	case len(doc.Sexes) == 0:
		return nil, eris.New("reference: no sexes")
	case len(doc.AgeGroups) == 0:
		return nil, eris.New("reference: no age groups")
	case len(doc.Periods) == 0:
		return nil, eris.New("reference: no periods")
	}

	v := &Vocabulary{
		doc:        doc,
		countries:  make(map[string]Country, len(doc.Countries)),
		indicators: make(map[string]Indicator, len(doc.Indicators)),
	}
	for _, c := range doc.Countries {
		if c.Name == "" || c.ISO3 == "" {
			return nil, eris.Errorf("reference: country %q missing name or iso3", c.Name)
		}
		if c.MaxLevel < 0 {
			return nil, eris.Errorf("reference: country %q has negative max_level", c.Name)
		}
		if _, dup := v.countries[c.Name]; dup {
			return nil, eris.Errorf("reference: duplicate country %q", c.Name)
		}
		v.countries[c.Name] = c
	}
	for _, ind := range doc.Indicators {
		if ind.Name == "" || ind.Code == "" {
			return nil, eris.Errorf("reference: indicator %q missing name or code", ind.Name)
		}
		if _, dup := v.indicators[ind.Name]; dup {
			return nil, eris.Errorf("reference: duplicate indicator %q", ind.Name)
		}
		v.indicators[ind.Name] = ind
	}
	for _, a := range doc.StandardAgeGroups {
		if !slices.Contains(doc.AgeGroups, a) {
			return nil, eris.Errorf("reference: standard age group %q not in age_groups", a)
		}
	}
	if doc.RecentPeriod == "" {
		v.doc.RecentPeriod = doc.Periods[len(doc.Periods)-1]
	} else if !slices.Contains(doc.Periods, doc.RecentPeriod) {
		return nil, eris.Errorf("reference: recent_period %q not in periods", doc.RecentPeriod)
	}
	return v, nil
}

// WithRecentPeriod returns a copy whose "recent" period is p.
// p must be one of the known periods.
func (v *Vocabulary) WithRecentPeriod(p string) (*Vocabulary, error) {
	if p == "" {
		return v, nil
	}
	if !slices.Contains(v.doc.Periods, p) {
		return nil, eris.Errorf("reference: recent period %q not in periods", p)
	}
	cp := *v
	cp.doc.RecentPeriod = p
	return &cp, nil
}

// Countries returns every country in file order.
func (v *Vocabulary) Countries() []Country {
	return slices.Clone(v.doc.Countries)
}

// CountryNames returns every country name in file order.
func (v *Vocabulary) CountryNames() []string {
	out := make([]string, 0, len(v.doc.Countries))
	for _, c := range v.doc.Countries {
		out = append(out, c.Name)
	}
	return out
}

// DREAMSCountries returns the names of DREAMS countries in file order.
func (v *Vocabulary) DREAMSCountries() []string {
	var out []string
	for _, c := range v.doc.Countries {
		if c.DREAMS {
			out = append(out, c.Name)
		}
	}
	return out
}

// Country looks up a country by exact name.
func (v *Vocabulary) Country(name string) (Country, bool) {
	c, ok := v.countries[name]
	return c, ok
}

// MaxLevel returns the deepest area level for a country.
func (v *Vocabulary) MaxLevel(name string) (int, bool) {
	c, ok := v.countries[name]
	return c.MaxLevel, ok
}

// Indicators returns every indicator in file order.
func (v *Vocabulary) Indicators() []Indicator {
	return slices.Clone(v.doc.Indicators)
}

// IndicatorNames returns every indicator name in file order.
func (v *Vocabulary) IndicatorNames() []string {
	out := make([]string, 0, len(v.doc.Indicators))
	for _, ind := range v.doc.Indicators {
		out = append(out, ind.Name)
	}
	return out
}

// NonANCIndicators returns indicator names not derived from antenatal clinic data.
func (v *Vocabulary) NonANCIndicators() []string {
	var out []string
	for _, ind := range v.doc.Indicators {
		if !ind.ANC {
			out = append(out, ind.Name)
		}
	}
	return out
}

// IndicatorCode returns the API code for an indicator name.
func (v *Vocabulary) IndicatorCode(name string) (string, bool) {
	ind, ok := v.indicators[name]
	return ind.Code, ok
}

// Sexes returns the valid sex options.
func (v *Vocabulary) Sexes() []string { return slices.Clone(v.doc.Sexes) }

// AgeGroups returns every valid age group.
func (v *Vocabulary) AgeGroups() []string { return slices.Clone(v.doc.AgeGroups) }

// StandardAgeGroups returns the five-year buckets from <1 to 50+.
func (v *Vocabulary) StandardAgeGroups() []string { return slices.Clone(v.doc.StandardAgeGroups) }

// Periods returns every published period in file order.
func (v *Vocabulary) Periods() []string { return slices.Clone(v.doc.Periods) }

// RecentPeriod is the period "recent" expands to.
func (v *Vocabulary) RecentPeriod() string { return v.doc.RecentPeriod }
