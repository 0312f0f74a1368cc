package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/couchcryptid/quake-data-etl/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Extractor performs the single upstream query of a run.
type Extractor interface {
	Fetch(ctx context.Context) domain.FetchResult
}

// Transformer converts a feature collection into enriched events.
type Transformer interface {
	Transform(ctx context.Context, coll domain.FeatureCollection) ([]domain.QuakeEvent, error)
}

// Loader persists the enriched table and returns the number of rows written.
type Loader interface {
	Load(ctx context.Context, events []domain.QuakeEvent) (int, error)
}

// Report describes the result of a run.
type Report struct {
	Outcome domain.FetchOutcome
	Summary domain.Summary
	Written int
	// WriteErr is the swallowed loader error, if any.
	WriteErr error
}

// Pipeline orchestrates one extract-transform-load pass.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	clock       clockwork.Clock
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, l Loader, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		clock:       clock,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run fetches, enriches, and saves once. Fetch failures and write failures are
// logged and reflected in the report; only a malformed payload returns an
// error.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	start := p.clock.Now()
	defer func() {
		p.metrics.RunDuration.Observe(p.clock.Since(start).Seconds())
	}()

	p.logger.InfoContext(ctx, "fetching earthquake data")
	res := p.extractor.Fetch(ctx)
	report := Report{Outcome: res.Outcome}

	if res.Outcome == domain.FetchFailed {
		p.logger.WarnContext(ctx, "could not fetch data, check your internet connection", "error", res.Err)
		return report, nil
	}

	p.logger.InfoContext(ctx, "processing data", "features", len(res.Collection.Features))
	events, err := p.transformer.Transform(ctx, res.Collection)
	if err != nil {
		p.metrics.TransformErrors.Inc()
		return report, fmt.Errorf("transform: %w", err)
	}
	report.Summary = domain.Summarize(events)

	written, err := p.loader.Load(ctx, events)
	if err != nil {
		p.metrics.WriteErrors.Inc()
		p.logger.ErrorContext(ctx, "save data failed", "error", err, "rows", len(events))
		report.WriteErr = err
		return report, nil
	}

	report.Written = written
	if written > 0 {
		p.metrics.EventsWritten.Add(float64(written))
		p.metrics.LastSuccess.Set(float64(p.clock.Now().Unix()))
	}
	return report, nil
}
