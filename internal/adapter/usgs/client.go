package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/config"
	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/couchcryptid/quake-data-etl/internal/observability"
	"github.com/jonboulle/clockwork"
)

// dateLayout is the FDSN starttime/endtime format used for day-granular windows.
const dateLayout = "2006-01-02"

// Client queries the USGS FDSN event service.
// It implements pipeline.Extractor.
type Client struct {
	baseURL      string
	lookbackDays int
	minMagnitude float64
	limit        int

	httpClient *http.Client
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a client for the configured endpoint and query window.
func NewClient(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:      cfg.USGSURL,
		lookbackDays: cfg.LookbackDays,
		minMagnitude: cfg.MinMagnitude,
		limit:        cfg.ResultLimit,
		httpClient: &http.Client{
			Timeout: cfg.USGSTimeout,
		},
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Fetch issues one GET for events in [today-lookback, today]. Errors never
// escape: they are logged and reported as domain.FetchFailed.
func (c *Client) Fetch(ctx context.Context) domain.FetchResult {
	u := c.queryURL()
	start := c.clock.Now()

	coll, err := c.doRequest(ctx, u)
	c.metrics.FetchDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchFailures.Inc()
		c.logger.Error("fetch earthquake data failed", "url", u, "error", err)
		return domain.FetchResult{Outcome: domain.FetchFailed, Err: err}
	}

	c.metrics.EventsFetched.Add(float64(len(coll.Features)))
	c.logger.Debug("fetched earthquake data", "features", len(coll.Features), "title", coll.Metadata.Title)

	if len(coll.Features) == 0 {
		return domain.FetchResult{Outcome: domain.FetchEmpty, Collection: coll}
	}
	return domain.FetchResult{Outcome: domain.FetchOK, Collection: coll}
}

// queryURL builds the FDSN query for the current day window.
func (c *Client) queryURL() string {
	start, end := c.Window()
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {start.Format(dateLayout)},
		"endtime":      {end.Format(dateLayout)},
		"minmagnitude": {strconv.FormatFloat(c.minMagnitude, 'f', -1, 64)},
		"limit":        {strconv.Itoa(c.limit)},
	}
	return c.baseURL + "?" + params.Encode()
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("event query request: %w", err)
	}
	defer resp.Body.Close()

	// FDSN services answer 204 when nodata=204 is in effect.
	if resp.StatusCode == http.StatusNoContent {
		return domain.FeatureCollection{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.FeatureCollection{}, fmt.Errorf("usgs API error: status %d: %s", resp.StatusCode, body)
	}

	var coll domain.FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&coll); err != nil {
		return domain.FeatureCollection{}, fmt.Errorf("decode response: %w", err)
	}
	return coll, nil
}

// Window returns the start and end of the range the next Fetch will query.
func (c *Client) Window() (start, end time.Time) {
	now := c.clock.Now()
	return now.AddDate(0, 0, -c.lookbackDays), now
}
