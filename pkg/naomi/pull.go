package naomi

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/export"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/query"
)

// Pull validates q, fetches every request it expands to and assembles the
// results. Validation errors are returned before any request is sent. If
// no request yields data the error wraps model.ErrNoDataFetched.
func (c *Client) Pull(ctx context.Context, q Query) (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	log := zap.L().With(zap.String("run_id", runID))

	fs, err := q.FilterSet()
	if err != nil {
		return nil, err
	}
	resolved, err := fs.Resolve(c.vocab, q.Verbose)
	if err != nil {
		return nil, err
	}
	reqs, err := query.Expand(resolved, c.vocab, c.baseURL)
	if err != nil {
		return nil, err
	}

	wait := c.wait
	if q.Wait > 0 {
		wait = q.Wait
	}
	log.Info("naomi: pull started",
		zap.Int("requests", len(reqs)),
		zap.Strings("countries", resolved.Countries),
		zap.Duration("wait", wait),
	)

	outcomes, err := c.Fetch(ctx, reqs, wait)
	if err != nil {
		return nil, err
	}

	res, err := Assemble(outcomes)
	if err != nil {
		log.Error("naomi: no data fetched", zap.Int("requests", len(reqs)))
		return nil, err
	}

	log.Info("naomi: pull complete",
		zap.Int("requests", res.Requests),
		zap.Int("rows", res.Data.Len()),
		zap.Int("failures", len(res.Failures)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if q.Export {
		exp := c.exporter
		if exp == nil {
			w, err := export.New(export.Options{
				Path:         export.DefaultPath,
				FailuresPath: export.DefaultFailuresPath,
			})
			if err != nil {
				return res, err
			}
			exp = w
		}
		if err := exp.Export(res.Data, res.Failures); err != nil {
			return res, eris.Wrap(err, "naomi: export")
		}
	}
	return res, nil
}
