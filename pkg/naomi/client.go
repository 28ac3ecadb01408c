// Package naomi pulls sub-national HIV estimates from the Naomi viewer API.
//
// A Pull resolves the caller's filters against the reference vocabulary,
// expands them into one request per age group, sex, indicator and period,
// fetches each request in turn and stitches the successful responses into a
// single table. Requests that fail are reported alongside the data rather
// than aborting the batch.
package naomi

import (
	"time"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/fetcher"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/query"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
)

// Exporter persists the result of a pull.
type Exporter interface {
	Export(data *model.Table, failures []model.FailureRecord) error
}

// Client runs pulls against one Naomi endpoint.
type Client struct {
	vocab    *reference.Vocabulary
	fetcher  fetcher.Fetcher
	baseURL  string
	wait     time.Duration
	exporter Exporter
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithWait sets the default pause between requests.
func WithWait(d time.Duration) Option {
	return func(c *Client) {
		c.wait = d
	}
}

// WithExporter sets where Query.Export writes results.
func WithExporter(e Exporter) Option {
	return func(c *Client) {
		c.exporter = e
	}
}

// NewClient creates a Client over the given vocabulary.
func NewClient(vocab *reference.Vocabulary, opts ...Option) *Client {
	c := &Client{
		vocab:   vocab,
		baseURL: query.DefaultBaseURL,
	}
	for _, o := range opts {
		o(c)
	}
	if c.fetcher == nil {
		c.fetcher = fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	}
	return c
}

// Vocabulary returns the vocabulary the client resolves filters against.
func (c *Client) Vocabulary() *reference.Vocabulary {
	return c.vocab
}
