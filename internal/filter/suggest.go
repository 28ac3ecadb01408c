package filter

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSuggestDistance is the largest edit distance still offered as a suggestion.
const MaxSuggestDistance = 2

// Suggest returns the vocabulary entry closest to value, or "" when none is
// within MaxSuggestDistance. Case and diacritics are ignored; ties go to the
// earlier entry.
func Suggest(value string, vocabulary []string) string {
	target := fold(value)
	best, bestDist := "", MaxSuggestDistance+1
	for _, candidate := range vocabulary {
		d := levenshtein.ComputeDistance(target, fold(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// fold lowercases s and strips combining marks, so "Côte" compares equal to "cote".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
