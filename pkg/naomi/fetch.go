package naomi

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/resilience"
)

// Fetch runs reqs one at a time in order and returns one Outcome per
// request. A failed request is logged and recorded, never retried. When wait
// is positive the loop pauses that long after every request. Only context
// cancellation stops the loop early.
func (c *Client) Fetch(ctx context.Context, reqs []model.AtomicRequest, wait time.Duration) ([]Outcome, error) {
	log := zap.L()
	outcomes := make([]Outcome, 0, len(reqs))

	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		o := c.fetchOne(ctx, req)
		switch o.Kind {
		case OutcomeSuccess:
			log.Debug("naomi: request succeeded",
				zap.Int("index", req.Index),
				zap.Int("rows", o.Table.Len()),
			)
		default:
			if ctx.Err() != nil {
				return outcomes, ctx.Err()
			}
			log.Warn("naomi: request failed",
				zap.Int("index", req.Index),
				zap.Stringer("outcome", o.Kind),
				zap.Int("status", o.Status),
				zap.String("url", req.URL),
				zap.Error(o.Err),
			)
		}
		outcomes = append(outcomes, o)

		// Nothing follows the last request, so there is nothing to pace.
		if wait > 0 && i < len(reqs)-1 {
			if err := sleep(ctx, wait); err != nil {
				return outcomes, err
			}
		}
	}
	return outcomes, nil
}

func (c *Client) fetchOne(ctx context.Context, req model.AtomicRequest) Outcome {
	o := Outcome{Request: req}

	resp, err := c.fetcher.Get(ctx, req.URL)
	if err != nil {
		o.Kind = OutcomeTransportError
		o.Err = err
		return o
	}
	o.Status = resp.StatusCode
	if !resp.OK() {
		o.Kind = OutcomeHTTPError
		o.Err = eris.Wrapf(model.ErrHTTPStatus, "status %d", resp.StatusCode)
		return o
	}

	t, err := annotate(ctx, req, resp.Body)
	if err != nil {
		o.Kind = OutcomeParseError
		o.Err = eris.Wrap(err, "parse response")
		return o
	}
	if t.Len() == 0 {
		o.Kind = OutcomeEmpty
		o.Err = model.ErrEmptyResult
		return o
	}
	o.Kind = OutcomeSuccess
	o.Table = t
	return o
}

// failure renders a failed outcome as a FailureRecord.
func failure(o Outcome) model.FailureRecord {
	var (
		reason string
		kind   resilience.Kind
	)
	switch o.Kind {
	case OutcomeEmpty:
		reason, kind = "empty result", resilience.Permanent
	case OutcomeParseError:
		reason, kind = "parse error", resilience.Permanent
	default:
		reason, kind = resilience.Classify(o.Status, o.Err)
	}
	return o.Request.Failure(o.Status, reason, kind == resilience.Transient)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
