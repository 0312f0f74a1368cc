package domain

// Continent is a coarse geographic label assigned from coordinates.
type Continent string

const (
	ContinentNorthAmerica Continent = "North America"
	ContinentAfrica       Continent = "Africa"
	ContinentEurope       Continent = "Europe"
	ContinentAsia         Continent = "Asia"
	ContinentAustralia    Continent = "Australia"
	ContinentSouthAmerica Continent = "South America"
	ContinentOcean        Continent = "Ocean"
)

// box is an inclusive longitude/latitude rectangle.
type box struct {
	continent      Continent
	minLon, maxLon float64
	minLat, maxLat float64
}

func (b box) contains(lat, lon float64) bool {
	return lon >= b.minLon && lon <= b.maxLon && lat >= b.minLat && lat <= b.maxLat
}

// continentBoxes overlap (Africa/Europe share lat 35-37, North/South America
// share lon -90..-30). Order decides the winner and must not change.
var continentBoxes = []box{
	{ContinentNorthAmerica, -120, -30, 30, 70},
	{ContinentAfrica, -20, 50, -35, 37},
	{ContinentEurope, -10, 40, 35, 70},
	{ContinentAsia, 60, 150, 5, 45},
	{ContinentAustralia, 110, 180, -50, -10},
	{ContinentSouthAmerica, -90, -30, -60, 15},
}

// ClassifyContinent maps a coordinate to the first bounding box that contains
// it, falling back to ContinentOcean. It is an approximation, not a geospatial
// lookup.
func ClassifyContinent(lat, lon float64) Continent {
	for _, b := range continentBoxes {
		if b.contains(lat, lon) {
			return b.continent
		}
	}
	return ContinentOcean
}
