// Package resilience classifies failed Naomi requests so callers can tell a
// request worth re-pulling later from one that will keep failing.
package resilience

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// Kind labels a failure as transient or permanent.
type Kind string

const (
	Transient Kind = "transient"
	Permanent Kind = "permanent"
)

// IsTransient returns true if err matches common transient error patterns
// (network timeouts, connection resets, DNS failures).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	// String heuristics for errors wrapped without %w by HTTP clients.
	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection reset by peer",
		"broken pipe",
		"temporary failure in name resolution",
		"tls handshake timeout",
		"i/o timeout",
		"server closed idle connection",
		"transport connection broken",
		"eof",
	}
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}

// IsTransientHTTPStatus returns true if the HTTP status code indicates a
// transient server-side issue.
func IsTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// ClassifyStatus returns a short reason and kind for a non-2xx response.
func ClassifyStatus(statusCode int) (string, Kind) {
	reason := "http " + http.StatusText(statusCode)
	if http.StatusText(statusCode) == "" {
		reason = "http status"
	}
	if IsTransientHTTPStatus(statusCode) {
		return strings.ToLower(reason), Transient
	}
	return strings.ToLower(reason), Permanent
}

// ClassifyError returns a short reason and kind for a request that produced
// no response at all.
func ClassifyError(err error) (string, Kind) {
	if IsTransient(err) {
		return "transport error", Transient
	}
	return "transport error", Permanent
}

// Classify labels a failed request. A zero status means the request never
// received a response and err describes why.
func Classify(status int, err error) (string, Kind) {
	if status == 0 {
		return ClassifyError(err)
	}
	return ClassifyStatus(status)
}
