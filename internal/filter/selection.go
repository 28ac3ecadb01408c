// Package filter resolves user-facing filter values into validated lists.
//
// Each dimension is a Selection: either a reserved keyword such as "all" or
// "dreams", or an explicit list of values. Keywords are expanded against the
// reference vocabulary once, then every value is checked for membership.
package filter

import (
	"strings"
)

// Keyword is a reserved filter value that expands to a list.
type Keyword string

const (
	KeywordAll      Keyword = "all"
	KeywordDREAMS   Keyword = "dreams"
	KeywordStandard Keyword = "standard"
	KeywordRecent   Keyword = "recent"
	KeywordNoANC    Keyword = "no anc"
)

var keywords = map[Keyword]bool{
	KeywordAll:      true,
	KeywordDREAMS:   true,
	KeywordStandard: true,
	KeywordRecent:   true,
	KeywordNoANC:    true,
}

// Selection is either a Keyword or an explicit list of values.
type Selection struct {
	keyword Keyword
	values  []string
}

// Explicit selects exactly the given values.
func Explicit(values ...string) Selection {
	return Selection{values: values}
}

// Select selects the expansion of k.
func Select(k Keyword) Selection {
	return Selection{keyword: k}
}

// Parse turns raw caller input into a Selection. A single value naming a
// keyword (case-insensitive) becomes that keyword; anything else is explicit.
// Surrounding whitespace is trimmed and blank entries dropped.
func Parse(raw []string) Selection {
	var values []string
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			values = append(values, r)
		}
	}
	if len(values) == 1 {
		k := Keyword(strings.ToLower(values[0]))
		if keywords[k] {
			return Select(k)
		}
	}
	return Explicit(values...)
}

// ParseList splits a comma-separated flag value and parses it.
func ParseList(s string) Selection {
	return Parse(strings.Split(s, ","))
}

// Keyword returns the selected keyword and whether the selection is one.
func (s Selection) Keyword() (Keyword, bool) {
	return s.keyword, s.keyword != ""
}

// Values returns a copy of the explicit values.
func (s Selection) Values() []string {
	return append([]string(nil), s.values...)
}

// IsZero reports whether nothing was selected.
func (s Selection) IsZero() bool {
	return s.keyword == "" && len(s.values) == 0
}

func (s Selection) String() string {
	if s.keyword != "" {
		return string(s.keyword)
	}
	return strings.Join(s.values, ",")
}
