package domain

import (
	"encoding/json"
	"time"
)

// FeatureCollection is the GeoJSON document returned by the FDSN event query.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Metadata Metadata  `json:"metadata"`
	Features []Feature `json:"features"`
}

// Metadata is the summary block USGS attaches to every query response.
type Metadata struct {
	Generated int64  `json:"generated"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Count     int    `json:"count"`
}

// Feature is one seismic event as delivered by the API. Properties are kept
// raw so that a missing key can be told apart from a zero value.
type Feature struct {
	ID         string                     `json:"id"`
	Properties map[string]json.RawMessage `json:"properties"`
	Geometry   *Geometry                  `json:"geometry"`
}

// Geometry holds the [longitude, latitude, depth_km] point of an event.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Severity is the magnitude bucket of an event.
type Severity string

const (
	SeverityLeve     Severity = "leve"
	SeverityModerado Severity = "moderado"
	SeverityFuerte   Severity = "fuerte"
	SeverityGrave    Severity = "grave"
)

// DepthCategory is the hypocentre depth bucket of an event.
type DepthCategory string

const (
	DepthSuperficial DepthCategory = "superficial"
	DepthIntermedio  DepthCategory = "intermedio"
	DepthProfundo    DepthCategory = "profundo"
	DepthManto       DepthCategory = "manto"
)

// TimeOfDay splits the UTC day into night and day halves.
type TimeOfDay string

const (
	TimeOfDayNoche TimeOfDay = "noche"
	TimeOfDayDia   TimeOfDay = "dia"
)

// QuakeEvent is one row of the enriched table. Field order matches the CSV
// column order in [Columns].
type QuakeEvent struct {
	ID string

	Time      time.Time
	Magnitude float64
	Place     string
	DepthKm   float64
	Longitude float64
	Latitude  float64
	Type      string
	Status    string

	// Derived fields. Severity and DepthCategory are empty when the value
	// falls outside every bin.
	Region          string
	Severity        Severity
	DepthCategory   DepthCategory
	TimeOfDay       TimeOfDay
	Continent       Continent
	EnergyJoules    float64
	CoastDistanceKm float64
}

// Columns lists the CSV header in output order.
var Columns = []string{
	"time",
	"magnitude",
	"place",
	"depth_km",
	"longitude",
	"latitude",
	"type",
	"status",
	"region",
	"severity",
	"depth_category",
	"time_of_day",
	"continent",
	"energy_joules",
	"coast_distance_km",
}
