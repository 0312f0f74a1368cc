package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrichedSample() []domain.QuakeEvent {
	raw := []domain.QuakeEvent{
		{Time: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), Magnitude: 6.0, Place: "10km SE of Testville, Nowhereland", DepthKm: 15, Longitude: -100, Latitude: 40, Type: "earthquake", Status: "reviewed"},
		{Time: time.Date(2024, 6, 2, 3, 0, 0, 0, time.UTC), Magnitude: 4.1, Place: "Fiji region", DepthKm: 580.2, Longitude: -178.3, Latitude: -18.1, Type: "earthquake", Status: "automatic"},
	}
	seed := uint64(3)
	return domain.EnrichQuakeEvents(raw, domain.NewNoiseSource(&seed))
}

func TestValidate_CleanTablePasses(t *testing.T) {
	for _, p := range validate(enrichedSample()) {
		assert.True(t, p.passed(), "%s: %v", p.name, p.errs)
	}
}

func TestValidate_DetectsInconsistencies(t *testing.T) {
	events := enrichedSample()
	events[0].Severity = domain.SeverityLeve
	events[0].EnergyJoules = 1
	events[1].Continent = domain.ContinentAsia
	events[1].CoastDistanceKm = -10_000

	failed := map[string]int{}
	for _, p := range validate(events) {
		if !p.passed() {
			failed[p.name] = p.count()
		}
	}

	assert.Equal(t, map[string]int{
		"Derived categories":                     2,
		"Energy formula (log10 E = 1.5M + 4.8)": 1,
		"Coast distance placeholder":             1,
	}, failed)
}

func TestValidate_EmptyTableFails(t *testing.T) {
	phases := validate(nil)
	require.NotEmpty(t, phases)
	assert.False(t, phases[0].passed())
}

func TestRun_WrittenFile(t *testing.T) {
	w := csvfile.NewWriter(t.TempDir(), "earthquake_data.csv", slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := w.Load(context.Background(), enrichedSample())
	require.NoError(t, err)

	assert.Equal(t, 0, run(w.Path()))
	assert.Equal(t, 1, run(filepath.Join(t.TempDir(), "missing.csv")))
}
