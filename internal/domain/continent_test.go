package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyContinent(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     Continent
	}{
		{"central US", 40, -100, ContinentNorthAmerica},
		{"gulf of guinea", 0, 0, ContinentAfrica},
		{"antarctica", -80, 0, ContinentOcean},
		{"italy", 42, 13, ContinentEurope},
		{"japan", 36, 138, ContinentAsia},
		{"new zealand", -41, 174, ContinentAustralia},
		{"chile", -33, -71, ContinentSouthAmerica},
		{"mid pacific", 0, -150, ContinentOcean},
		{"box edge inclusive", 70, -120, ContinentNorthAmerica},
		{"NaN", math.NaN(), math.NaN(), ContinentOcean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyContinent(tt.lat, tt.lon))
		})
	}
}

func TestClassifyContinent_OverlapOrder(t *testing.T) {
	// lat 36 is inside both the Africa and Europe boxes; Africa is checked first.
	assert.Equal(t, ContinentAfrica, ClassifyContinent(36, 20))
	// lat 30, lon -80 is inside North America and South America boxes.
	assert.Equal(t, ContinentNorthAmerica, ClassifyContinent(30, -80))
	// Asia and Australia do not overlap in latitude; lon 120 lat -20 is Australia.
	assert.Equal(t, ContinentAustralia, ClassifyContinent(-20, 120))
}

func TestClassifyContinent_Deterministic(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 7.5 {
			first := ClassifyContinent(lat, lon)
			assert.NotEmpty(t, first)
			assert.Equal(t, first, ClassifyContinent(lat, lon))
		}
	}
}
