package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/quake-data-etl/internal/domain"
)

// Writer saves the enriched table as a CSV file inside a data directory.
// It implements pipeline.Loader.
type Writer struct {
	dataDir  string
	filename string
	logger   *slog.Logger
}

// NewWriter creates a writer targeting dataDir/filename.
func NewWriter(dataDir, filename string, logger *slog.Logger) *Writer {
	return &Writer{dataDir: dataDir, filename: filename, logger: logger}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return filepath.Join(w.dataDir, w.filename)
}

// Load creates the data directory if needed and, when events is non-empty,
// writes a header row plus one row per event, replacing any existing file.
// An empty table writes nothing. It returns the number of rows written.
func (w *Writer) Load(ctx context.Context, events []domain.QuakeEvent) (int, error) {
	path := w.Path()
	if err := os.MkdirAll(w.dataDir, 0o755); err != nil {
		return 0, fmt.Errorf("create data dir: %w", err)
	}

	if len(events) == 0 {
		w.logger.InfoContext(ctx, "no data to save", "path", path)
		return 0, nil
	}

	if err := writeFile(path, events); err != nil {
		return 0, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	w.logger.InfoContext(ctx, "data saved", "path", path, "absolute_path", abs, "rows", len(events))
	return len(events), nil
}

func writeFile(path string, events []domain.QuakeEvent) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range events {
		if err := cw.Write(encodeRow(events[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
