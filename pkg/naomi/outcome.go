package naomi

import (
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// OutcomeKind is the terminal state of one request.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeEmpty
	OutcomeHTTPError
	// OutcomeTransportError means no HTTP status was received.
	OutcomeTransportError
	// OutcomeParseError means a 2xx body could not be read as CSV.
	OutcomeParseError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeHTTPError:
		return "http_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one request.
type Outcome struct {
	Request model.AtomicRequest
	Kind    OutcomeKind
	// Table is set only for OutcomeSuccess.
	Table  *model.Table
	Status int
	Err    error
}

// OK reports whether the request produced data.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}
