package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
)

// QuakeTransformer implements Transformer using the domain parse and enrich
// functions.
type QuakeTransformer struct {
	noise  domain.NoiseSource
	logger *slog.Logger
}

// NewTransformer creates a QuakeTransformer. Pass a seeded noise source for
// reproducible coast distance values, or nil for a random one.
func NewTransformer(noise domain.NoiseSource, logger *slog.Logger) *QuakeTransformer {
	if noise == nil {
		noise = domain.NewNoiseSource(nil)
	}
	return &QuakeTransformer{
		noise:  noise,
		logger: logger,
	}
}

func (t *QuakeTransformer) Transform(ctx context.Context, coll domain.FeatureCollection) ([]domain.QuakeEvent, error) {
	events, err := domain.ParseFeatures(coll)
	if err != nil {
		return nil, err
	}

	enriched := domain.EnrichQuakeEvents(events, t.noise)
	t.logger.DebugContext(ctx, "enriched events", "count", len(enriched))
	return enriched, nil
}
