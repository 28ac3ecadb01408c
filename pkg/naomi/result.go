package naomi

import (
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// Result is the assembled output of a pull. Failures is empty when every
// request succeeded.
type Result struct {
	Data     *model.Table
	Failures []model.FailureRecord
	Requests int
}

// Complete reports whether every request produced data.
func (r *Result) Complete() bool {
	return len(r.Failures) == 0
}

// Assemble concatenates successful tables in request order and collects a
// FailureRecord for every other outcome. It returns a *model.NoDataError
// when nothing succeeded.
func Assemble(outcomes []Outcome) (*Result, error) {
	res := &Result{Data: &model.Table{}, Requests: len(outcomes)}
	succeeded := 0
	for _, o := range outcomes {
		if o.OK() {
			res.Data.Append(o.Table)
			succeeded++
			continue
		}
		res.Failures = append(res.Failures, failure(o))
	}
	if succeeded == 0 {
		return nil, &model.NoDataError{Failures: res.Failures}
	}
	return res, nil
}
