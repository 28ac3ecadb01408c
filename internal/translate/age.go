package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

const (
	// AllAgesCode is the code for "all ages".
	AllAgesCode = "Y000_999"
	// InfantCode is the code for "<1".
	InfantCode = "Y000_000"
	openUpper  = 999
)

// AgeCode converts an age group such as "15-19", "50+", "<1" or "all ages"
// into the Naomi age code "Y015_019".
func AgeCode(age string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(age))
	switch {
	case s == "all ages":
		return AllAgesCode, nil
	case s == "<1":
		return InfantCode, nil
	case strings.HasSuffix(s, "+"):
		lo, err := ageBound(strings.TrimSuffix(s, "+"))
		if err != nil {
			return "", eris.Wrapf(err, "age %q", age)
		}
		return formatAge(lo, openUpper), nil
	}

	lower, upper, ok := strings.Cut(s, "-")
	if !ok {
		return "", eris.Wrapf(model.ErrInvalidAgeFormat, "age %q: expected \"a-b\", \"a+\", \"<1\" or \"all ages\"", age)
	}
	lo, err := ageBound(lower)
	if err != nil {
		return "", eris.Wrapf(err, "age %q", age)
	}
	hi, err := ageBound(upper)
	if err != nil {
		return "", eris.Wrapf(err, "age %q", age)
	}
	if hi < lo {
		return "", eris.Wrapf(model.ErrInvalidAgeFormat, "age %q: upper bound below lower bound", age)
	}
	return formatAge(lo, hi), nil
}

func ageBound(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > openUpper {
		return 0, eris.Wrapf(model.ErrInvalidAgeFormat, "bound %q", s)
	}
	return n, nil
}

func formatAge(lo, hi int) string {
	return fmt.Sprintf("Y%03d_%03d", lo, hi)
}
