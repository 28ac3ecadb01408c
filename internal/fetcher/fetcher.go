package fetcher

import (
	"context"
)

// Response is the status and fully-read body of one GET.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher issues GET requests against the Naomi API.
type Fetcher interface {
	// Get fetches url. A non-2xx status is not an error; err is reserved for
	// requests that never produced a response.
	Get(ctx context.Context, url string) (*Response, error)
}
