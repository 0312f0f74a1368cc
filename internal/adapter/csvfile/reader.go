package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
)

// ReadFile loads a CSV written by Writer. The header must match
// domain.Columns exactly.
func ReadFile(path string) ([]domain.QuakeEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv: missing header")
	}
	if !slices.Equal(rows[0], domain.Columns) {
		return nil, fmt.Errorf("unexpected header %v", rows[0])
	}

	events := make([]domain.QuakeEvent, 0, len(rows)-1)
	for i, row := range rows[1:] {
		e, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		events = append(events, e)
	}
	return events, nil
}
