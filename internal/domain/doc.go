// Package domain models USGS earthquake catalogue data and the enrichment
// applied to it before it is written out as a flat table.
//
// # Data Source
//
// Events come from the USGS FDSN event web service
// (https://earthquake.usgs.gov/fdsnws/event/1/) queried with format=geojson.
// The response is a GeoJSON FeatureCollection; each Feature carries the event
// attributes under "properties" and a Point under "geometry".
//
// # USGS Data Conventions
//
// Time:
//
//	properties.time is milliseconds since the Unix epoch, UTC.
//	It is converted with [time.UnixMilli] and kept in UTC. Hour-based
//	derivations use the UTC hour as-is.
//
// Coordinates:
//
//	geometry.coordinates is [longitude, latitude, depth] with depth in km,
//	positive downward. Shallow events can report small negative depths
//	(above the reference ellipsoid); those fall outside every depth bin.
//
// Place:
//
//	Free text such as "10 km SE of Testville, Nowhereland". The region column
//	is the text after the final comma. Offshore or remote events often have no
//	comma ("Mid-Atlantic Ridge") and get an empty region.
//
// # Derived Fields
//
// Severity and depth bins are exclusive below and inclusive above:
//
//	Severity:  (0,3] leve | (3,5] moderado | (5,7] fuerte | (7,10] grave
//	Depth km:  (0,30] superficial | (30,100] intermedio | (100,300] profundo | (300,700] manto
//
// Values outside the outer edges are left empty rather than clamped.
//
// Energy uses the Gutenberg-Richter relation log10(E) = 1.5M + 4.8 (joules).
//
// The coast distance column is a synthetic placeholder: |depth|*10 plus
// Gaussian noise (mean 50, stddev 20). It is not a geographic distance. Seed
// the [NoiseSource] to reproduce it.
//
// Continent assignment is a coarse bounding-box heuristic evaluated in a fixed
// order; see [ClassifyContinent].
package domain
