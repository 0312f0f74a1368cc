package domain

import "time"

// Summary aggregates an enriched table for end-of-run reporting.
type Summary struct {
	Count       int
	Earliest    time.Time
	Latest      time.Time
	BySeverity  map[Severity]int
	ByContinent map[Continent]int
}

// Summarize counts events and finds the covered time range. Events with no
// severity bin are counted under the empty key.
func Summarize(events []QuakeEvent) Summary {
	s := Summary{
		Count:       len(events),
		BySeverity:  make(map[Severity]int),
		ByContinent: make(map[Continent]int),
	}
	for i, e := range events {
		if i == 0 || e.Time.Before(s.Earliest) {
			s.Earliest = e.Time
		}
		if i == 0 || e.Time.After(s.Latest) {
			s.Latest = e.Time
		}
		s.BySeverity[e.Severity]++
		s.ByContinent[e.Continent]++
	}
	return s
}
