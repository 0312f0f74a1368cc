// Command validate re-reads a CSV written by the ETL and checks it for
// internal consistency: header, row values, derived categories, the energy
// formula, and the coast distance placeholder.
//
// Usage:
//
//	go run ./cmd/validate -csv datos/earthquake_data.csv
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/quake-data-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/hashicorp/go-multierror"
)

// coastResidualLimit is how far coast_distance_km - 10*|depth_km| may stray
// from the noise mean, in noise standard deviations.
const coastResidualLimit = 8.0

// phase tracks pass/fail for a validation phase.
type phase struct {
	name string
	errs *multierror.Error
}

func (p *phase) errorf(format string, args ...any) {
	p.errs = multierror.Append(p.errs, fmt.Errorf(format, args...))
}

func (p *phase) passed() bool { return p.errs.ErrorOrNil() == nil }

func (p *phase) count() int { return p.errs.Len() }

func main() {
	csvPath := flag.String("csv", "datos/earthquake_data.csv", "path to the ETL output CSV")
	flag.Parse()

	os.Exit(run(*csvPath))
}

func run(csvPath string) int {
	fmt.Println("=== Earthquake Data Integrity Validation ===")
	fmt.Println()

	events, err := csvfile.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	phases := validate(events)

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", p.count())
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d (%s)\n", len(events), csvPath)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errs.Errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validate(events []domain.QuakeEvent) []*phase {
	// Recompute derived columns from the raw ones. Noise is irrelevant here,
	// coast distance is checked separately.
	expected := domain.EnrichQuakeEvents(events, zeroNoise{})

	return []*phase{
		validateRows(events),
		validateCategories(events, expected),
		validateEnergy(events),
		validateCoastDistance(events),
	}
}

type zeroNoise struct{}

func (zeroNoise) NormFloat64() float64 { return 0 }

// ── Phases ──

func validateRows(events []domain.QuakeEvent) *phase {
	p := &phase{name: "Row values"}
	if len(events) == 0 {
		p.errorf("no data rows")
	}
	for i, e := range events {
		line := i + 2
		if e.Time.IsZero() {
			p.errorf("line %d: empty time", line)
		}
		for col, v := range map[string]float64{
			"magnitude": e.Magnitude,
			"depth_km":  e.DepthKm,
			"longitude": e.Longitude,
			"latitude":  e.Latitude,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				p.errorf("line %d: %s is not finite", line, col)
			}
		}
		if e.Longitude < -180 || e.Longitude > 180 {
			p.errorf("line %d: longitude %g out of range", line, e.Longitude)
		}
		if e.Latitude < -90 || e.Latitude > 90 {
			p.errorf("line %d: latitude %g out of range", line, e.Latitude)
		}
	}
	return p
}

func validateCategories(events, expected []domain.QuakeEvent) *phase {
	p := &phase{name: "Derived categories"}
	for i := range events {
		got, want := events[i], expected[i]
		line := i + 2
		if got.Region != want.Region {
			p.errorf("line %d: region=%q, place %q gives %q", line, got.Region, got.Place, want.Region)
		}
		if got.Severity != want.Severity {
			p.errorf("line %d: severity=%q, magnitude %g gives %q", line, got.Severity, got.Magnitude, want.Severity)
		}
		if got.DepthCategory != want.DepthCategory {
			p.errorf("line %d: depth_category=%q, depth %g gives %q", line, got.DepthCategory, got.DepthKm, want.DepthCategory)
		}
		if got.TimeOfDay != want.TimeOfDay {
			p.errorf("line %d: time_of_day=%q, hour %d gives %q", line, got.TimeOfDay, got.Time.UTC().Hour(), want.TimeOfDay)
		}
		if got.Continent != want.Continent {
			p.errorf("line %d: continent=%q, (%g, %g) gives %q", line, got.Continent, got.Latitude, got.Longitude, want.Continent)
		}
	}
	return p
}

func validateEnergy(events []domain.QuakeEvent) *phase {
	p := &phase{name: "Energy formula (log10 E = 1.5M + 4.8)"}
	for i, e := range events {
		want := domain.EnergyJoules(e.Magnitude)
		if math.Abs(e.EnergyJoules-want) > 1e-9*math.Abs(want) {
			p.errorf("line %d: energy_joules=%g, magnitude %g gives %g", i+2, e.EnergyJoules, e.Magnitude, want)
		}
	}
	return p
}

func validateCoastDistance(events []domain.QuakeEvent) *phase {
	p := &phase{name: "Coast distance placeholder"}
	for i, e := range events {
		if math.IsNaN(e.CoastDistanceKm) || math.IsInf(e.CoastDistanceKm, 0) {
			p.errorf("line %d: coast_distance_km is not finite", i+2)
			continue
		}
		residual := e.CoastDistanceKm - 10*math.Abs(e.DepthKm)
		if z := (residual - 50) / 20; math.Abs(z) > coastResidualLimit {
			p.errorf("line %d: coast_distance_km=%g is %.1f sigma from 10*|depth|+50", i+2, e.CoastDistanceKm, z)
		}
	}
	return p
}
