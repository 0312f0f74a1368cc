//go:build usgs

package usgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/couchcryptid/quake-data-etl/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real USGS event service.
// Run with: go test -tags=usgs ./internal/adapter/usgs/ -v -count=1

func smokeClient() *Client {
	return &Client{
		baseURL:      "https://earthquake.usgs.gov/fdsnws/event/1/query",
		lookbackDays: 7,
		minMagnitude: 4.5,
		limit:        20,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		clock:        clockwork.NewRealClock(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:      observability.NewMetricsForTesting(),
	}
}

func TestSmoke_FetchAndParse(t *testing.T) {
	res := smokeClient().Fetch(context.Background())
	require.NoError(t, res.Err)
	require.Equal(t, domain.FetchOK, res.Outcome, "expected at least one M4.5+ event in the last week")
	assert.LessOrEqual(t, len(res.Collection.Features), 20)

	events, err := domain.ParseFeatures(res.Collection)
	require.NoError(t, err)
	assert.Len(t, events, len(res.Collection.Features))
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Magnitude, 4.5)
	}
}
