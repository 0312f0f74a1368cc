package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"
)

// requiredProperties must be present on every feature.
var requiredProperties = []string{"time", "mag", "place", "type", "status"}

// regionRe captures the text after the final comma of a USGS place string,
// e.g. "10 km SE of Testville, Nowhereland" -> "Nowhereland".
var regionRe = regexp.MustCompile(`,\s*([^,]+)$`)

// ErrMalformedFeature is wrapped by every ParseFeatures error.
var ErrMalformedFeature = errors.New("malformed feature")

// ParseFeatures flattens a feature collection into un-enriched events. Any
// feature missing a required property or a [lon, lat, depth] coordinate fails
// the whole batch.
func ParseFeatures(coll FeatureCollection) ([]QuakeEvent, error) {
	events := make([]QuakeEvent, 0, len(coll.Features))
	for i, f := range coll.Features {
		event, err := parseFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, f.ID, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func parseFeature(f Feature) (QuakeEvent, error) {
	for _, key := range requiredProperties {
		if _, ok := f.Properties[key]; !ok {
			return QuakeEvent{}, fmt.Errorf("%w: missing properties.%s", ErrMalformedFeature, key)
		}
	}
	if f.Geometry == nil {
		return QuakeEvent{}, fmt.Errorf("%w: missing geometry", ErrMalformedFeature)
	}
	if len(f.Geometry.Coordinates) < 3 {
		return QuakeEvent{}, fmt.Errorf("%w: geometry.coordinates has %d elements, want 3",
			ErrMalformedFeature, len(f.Geometry.Coordinates))
	}

	var (
		millis int64
		mag    float64
		event  QuakeEvent
	)
	if err := decodeRequired(f.Properties["time"], &millis); err != nil {
		return QuakeEvent{}, fmt.Errorf("properties.time: %w", err)
	}
	if err := decodeRequired(f.Properties["mag"], &mag); err != nil {
		return QuakeEvent{}, fmt.Errorf("properties.mag: %w", err)
	}
	for key, dst := range map[string]*string{
		"place":  &event.Place,
		"type":   &event.Type,
		"status": &event.Status,
	} {
		if err := json.Unmarshal(f.Properties[key], dst); err != nil {
			return QuakeEvent{}, fmt.Errorf("properties.%s: %w", key, err)
		}
	}

	event.ID = f.ID
	event.Time = time.UnixMilli(millis).UTC()
	event.Magnitude = mag
	event.Longitude = f.Geometry.Coordinates[0]
	event.Latitude = f.Geometry.Coordinates[1]
	event.DepthKm = f.Geometry.Coordinates[2]
	return event, nil
}

// decodeRequired unmarshals a numeric property, rejecting JSON null.
func decodeRequired(raw json.RawMessage, dst any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: value is null", ErrMalformedFeature)
	}
	return json.Unmarshal(raw, dst)
}

// EnrichQuakeEvents derives the categorical and numeric columns for every
// event. The input slice is not modified. A nil noise source draws from an
// unseeded generator.
func EnrichQuakeEvents(events []QuakeEvent, noise NoiseSource) []QuakeEvent {
	if noise == nil {
		noise = NewNoiseSource(nil)
	}
	out := make([]QuakeEvent, len(events))
	for i, e := range events {
		e.Region = extractRegion(e.Place)
		e.Severity = deriveSeverity(e.Magnitude)
		e.DepthCategory = deriveDepthCategory(e.DepthKm)
		e.TimeOfDay = deriveTimeOfDay(e.Time)
		e.Continent = ClassifyContinent(e.Latitude, e.Longitude)
		e.EnergyJoules = EnergyJoules(e.Magnitude)
		e.CoastDistanceKm = coastDistance(e.DepthKm, noise)
		out[i] = e
	}
	return out
}

// extractRegion returns the last comma-delimited token of place, or "" when
// place has no comma followed by text.
func extractRegion(place string) string {
	m := regionRe.FindStringSubmatch(place)
	if len(m) != 2 {
		return ""
	}
	return m[1]
}

// Bin edges are exclusive below and inclusive above: (0,3], (3,5], ...

func deriveSeverity(mag float64) Severity {
	switch {
	case mag <= 0 || mag > 10 || math.IsNaN(mag):
		return ""
	case mag <= 3:
		return SeverityLeve
	case mag <= 5:
		return SeverityModerado
	case mag <= 7:
		return SeverityFuerte
	default:
		return SeverityGrave
	}
}

func deriveDepthCategory(depth float64) DepthCategory {
	switch {
	case depth <= 0 || depth > 700 || math.IsNaN(depth):
		return ""
	case depth <= 30:
		return DepthSuperficial
	case depth <= 100:
		return DepthIntermedio
	case depth <= 300:
		return DepthProfundo
	default:
		return DepthManto
	}
}

// deriveTimeOfDay uses the hour of the UTC timestamp without any local
// timezone conversion.
func deriveTimeOfDay(t time.Time) TimeOfDay {
	h := t.UTC().Hour()
	if h < 6 || h >= 18 {
		return TimeOfDayNoche
	}
	return TimeOfDayDia
}

// EnergyJoules estimates radiated seismic energy with log10(E) = 1.5M + 4.8.
func EnergyJoules(mag float64) float64 {
	return math.Pow(10, 1.5*mag+4.8)
}

// coastDistance is a synthetic placeholder, not a real distance: ten times the
// absolute depth plus N(50, 20) noise.
func coastDistance(depth float64, noise NoiseSource) float64 {
	return math.Abs(depth)*10 + coastNoiseMean + coastNoiseStdDev*noise.NormFloat64()
}
