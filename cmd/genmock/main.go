// Command genmock writes a synthetic USGS GeoJSON feature collection for
// offline runs and tests. Output is fully determined by -seed and -n, and the
// collection is checked against the real domain transform before it is
// written.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/usgs_mock.geojson -n 200 -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

// generatedAt is the fixed "now" of every fixture, so metadata and event
// times do not drift between runs.
var generatedAt = time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

// A handful of recurring USGS place names, spread over every continent box
// and open ocean.
var places = []struct {
	region   string
	lon, lat float64
}{
	{"CA", -117.6, 35.7},
	{"Alaska", -150.0, 61.2},
	{"Mexico", -98.5, 17.0},
	{"Chile", -71.5, -30.0},
	{"Peru", -76.0, -12.0},
	{"Japan", 142.4, 38.3},
	{"Indonesia", 120.0, -8.5},
	{"Turkey", 37.0, 37.5},
	{"Italy", 13.4, 42.3},
	{"Greece", 22.0, 38.0},
	{"Papua New Guinea", 146.0, -6.0},
	{"Vanuatu", 168.7, -17.8},
	{"Ethiopia", 40.0, 9.0},
	{"Mid-Atlantic Ridge", -29.1, 0.9},
	{"Fiji region", -178.3, -18.1},
}

var directions = []string{"N", "NNE", "NE", "E", "SE", "S", "SW", "W", "NW"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the GeoJSON fixture")
	n := flag.Int("n", 100, "number of features to generate")
	seed := flag.Uint64("seed", 1, "random seed")
	lookback := flag.Int("lookback-days", 365, "spread event times over this many days before the fixture date")
	flag.Parse()

	if *out == "" || *n <= 0 || *lookback <= 0 {
		flag.Usage()
		return fmt.Errorf("missing or invalid flags: -out, -n, -lookback-days")
	}

	clock := clockwork.NewFakeClockAt(generatedAt)
	rng := rand.New(rand.NewPCG(*seed, *seed))

	coll := generate(rng, clock, *n, *lookback)

	// Run the real transform so a fixture that the ETL would reject never
	// reaches disk.
	events, err := domain.ParseFeatures(coll)
	if err != nil {
		return fmt.Errorf("generated fixture does not parse: %w", err)
	}
	enriched := domain.EnrichQuakeEvents(events, domain.NewNoiseSource(seed))

	if err := writeJSON(*out, coll); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d features: %s", len(coll.Features), *out)

	printStats(enriched)
	return nil
}

func generate(rng *rand.Rand, clock clockwork.Clock, n, lookbackDays int) domain.FeatureCollection {
	now := clock.Now()
	span := int64(lookbackDays) * int64(24*time.Hour/time.Millisecond)

	features := make([]domain.Feature, 0, n)
	for i := range n {
		p := places[rng.IntN(len(places))]

		// Gutenberg-Richter-ish: small events dominate.
		mag := round(2.5+rng.ExpFloat64()*0.9, 1)
		depth := round(depthSample(rng), 2)
		lon := round(p.lon+rng.NormFloat64()*1.5, 4)
		lat := round(p.lat+rng.NormFloat64()*1.5, 4)

		place := p.region
		if rng.IntN(4) > 0 {
			place = fmt.Sprintf("%d km %s of Sampletown, %s",
				1+rng.IntN(120), directions[rng.IntN(len(directions))], p.region)
		}

		status := "reviewed"
		if rng.IntN(3) == 0 {
			status = "automatic"
		}
		typ := "earthquake"
		if rng.IntN(40) == 0 {
			typ = "quarry blast"
			depth = -round(rng.Float64(), 2)
		}

		features = append(features, domain.Feature{
			ID: fmt.Sprintf("mock%06d", i),
			Properties: map[string]json.RawMessage{
				"time":   rawJSON(now.UnixMilli() - rng.Int64N(span)),
				"mag":    rawJSON(mag),
				"place":  rawJSON(place),
				"type":   rawJSON(typ),
				"status": rawJSON(status),
			},
			Geometry: &domain.Geometry{
				Type:        "Point",
				Coordinates: []float64{lon, lat, depth},
			},
		})
	}

	return domain.FeatureCollection{
		Type: "FeatureCollection",
		Metadata: domain.Metadata{
			Generated: now.UnixMilli(),
			URL:       "mock://genmock",
			Title:     "USGS Earthquakes (synthetic)",
			Status:    200,
			Count:     len(features),
		},
		Features: features,
	}
}

// depthSample mixes shallow crustal events with a thin tail of deep slab
// events down to the mantle bin.
func depthSample(rng *rand.Rand) float64 {
	switch r := rng.Float64(); {
	case r < 0.7:
		return rng.Float64() * 70
	case r < 0.9:
		return 70 + rng.Float64()*230
	default:
		return 300 + rng.Float64()*400
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func rawJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type labelCount struct {
	label string
	count int
}

func sortedCounts[K ~string](m map[K]int) []labelCount {
	out := make([]labelCount, 0, len(m))
	for k, c := range m {
		label := string(k)
		if label == "" {
			label = "(none)"
		}
		out = append(out, labelCount{label, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].label < out[j].label
	})
	return out
}

func printStats(events []domain.QuakeEvent) {
	s := domain.Summarize(events)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", s.Count)
	fmt.Printf("Range: %s .. %s\n", s.Earliest.Format(time.RFC3339), s.Latest.Format(time.RFC3339))

	fmt.Print("By severity:")
	for _, lc := range sortedCounts(s.BySeverity) {
		fmt.Printf(" %s=%d", lc.label, lc.count)
	}
	fmt.Println()

	fmt.Print("By continent:")
	for _, lc := range sortedCounts(s.ByContinent) {
		fmt.Printf(" %s=%d", lc.label, lc.count)
	}
	fmt.Println()

	depths := map[domain.DepthCategory]int{}
	for _, e := range events {
		depths[e.DepthCategory]++
	}
	fmt.Print("By depth:")
	for _, lc := range sortedCounts(depths) {
		fmt.Printf(" %s=%d", lc.label, lc.count)
	}
	fmt.Println()
}
