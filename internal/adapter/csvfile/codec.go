package csvfile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
)

// timeLayout renders event times in UTC with millisecond precision.
const timeLayout = "2006-01-02 15:04:05.000"

func encodeRow(e domain.QuakeEvent) []string {
	return []string{
		e.Time.UTC().Format(timeLayout),
		formatFloat(e.Magnitude),
		e.Place,
		formatFloat(e.DepthKm),
		formatFloat(e.Longitude),
		formatFloat(e.Latitude),
		e.Type,
		e.Status,
		e.Region,
		string(e.Severity),
		string(e.DepthCategory),
		string(e.TimeOfDay),
		string(e.Continent),
		formatFloat(e.EnergyJoules),
		formatFloat(e.CoastDistanceKm),
	}
}

// decodeRow is the inverse of encodeRow. row must follow domain.Columns order.
func decodeRow(row []string) (domain.QuakeEvent, error) {
	if len(row) != len(domain.Columns) {
		return domain.QuakeEvent{}, fmt.Errorf("got %d fields, want %d", len(row), len(domain.Columns))
	}

	t, err := time.Parse(timeLayout, row[0])
	if err != nil {
		return domain.QuakeEvent{}, fmt.Errorf("time: %w", err)
	}

	var nums [6]float64
	for i, col := range []int{1, 3, 4, 5, 13, 14} {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return domain.QuakeEvent{}, fmt.Errorf("%s: %w", domain.Columns[col], err)
		}
		nums[i] = v
	}

	return domain.QuakeEvent{
		Time:            t,
		Magnitude:       nums[0],
		Place:           row[2],
		DepthKm:         nums[1],
		Longitude:       nums[2],
		Latitude:        nums[3],
		Type:            row[6],
		Status:          row[7],
		Region:          row[8],
		Severity:        domain.Severity(row[9]),
		DepthCategory:   domain.DepthCategory(row[10]),
		TimeOfDay:       domain.TimeOfDay(row[11]),
		Continent:       domain.Continent(row[12]),
		EnergyJoules:    nums[4],
		CoastDistanceKm: nums[5],
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
