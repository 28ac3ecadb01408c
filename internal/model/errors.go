// Package model holds the request, result and error types shared by the puller.
package model

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	// ErrInvalidParameter marks a filter value absent from its vocabulary.
	ErrInvalidParameter = eris.New("invalid parameter")
	// ErrInvalidPeriodFormat marks a period not shaped like "March 2024".
	ErrInvalidPeriodFormat = eris.New("invalid period format")
	// ErrInvalidAgeFormat marks an age group that cannot be coded.
	ErrInvalidAgeFormat = eris.New("invalid age format")
	// ErrMissingCode marks a request with an untranslatable dimension.
	ErrMissingCode = eris.New("missing code")
	// ErrHTTPStatus marks a non-2xx API response.
	ErrHTTPStatus = eris.New("unexpected http status")
	// ErrEmptyResult marks a 2xx response without data rows.
	ErrEmptyResult = eris.New("empty result")
	// ErrNoDataFetched marks a batch in which every request failed.
	ErrNoDataFetched = eris.New("no data fetched")
)

// InvalidParameterError names the offending value and the closest valid one.
type InvalidParameterError struct {
	Field      string
	Value      string
	Suggestion string
}

func (e *InvalidParameterError) Error() string {
	msg := fmt.Sprintf("invalid %s: %q is not a recognised value", e.Field, e.Value)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// Is lets errors.Is match ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NoDataError is returned when a batch yields no rows at all.
type NoDataError struct {
	Failures []FailureRecord
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data fetched: all %d requests failed", len(e.Failures))
}

// Is lets errors.Is match ErrNoDataFetched.
func (e *NoDataError) Is(target error) bool {
	return target == ErrNoDataFetched
}
