package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/couchcryptid/quake-data-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/quake-data-etl/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-etl/internal/config"
	"github.com/couchcryptid/quake-data-etl/internal/domain"
	"github.com/couchcryptid/quake-data-etl/internal/observability"
	"github.com/couchcryptid/quake-data-etl/internal/pipeline"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// pushTimeout bounds the final metrics push.
const pushTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat).
		With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	client := usgs.NewClient(cfg, clock, logger, metrics)
	transformer := pipeline.NewTransformer(domain.NewNoiseSource(cfg.NoiseSeed), logger)
	writer := csvfile.NewWriter(cfg.DataDir, cfg.OutputFile, logger)

	p := pipeline.New(client, transformer, writer, clock, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logBanner(logger, cfg, client, writer)

	report, err := p.Run(ctx)
	defer pushMetrics(logger, cfg, metrics)
	if err != nil {
		logger.Error("pipeline error", "error", err)
		return 1
	}

	switch report.Outcome {
	case domain.FetchFailed:
		logger.Warn("no data was processed")
	case domain.FetchEmpty:
		logger.Info("no events matched the query window")
	default:
		logSummary(logger, report)
	}
	return 0
}

func logBanner(logger *slog.Logger, cfg *config.Config, client *usgs.Client, writer *csvfile.Writer) {
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = "."
	}
	absOut, err := filepath.Abs(writer.Path())
	if err != nil {
		absOut = writer.Path()
	}
	start, end := client.Window()

	logger.Info("starting earthquake ETL",
		"base_dir", baseDir,
		"data_dir", cfg.DataDir,
		"output", absOut,
		"window_start", start.Format(time.DateOnly),
		"window_end", end.Format(time.DateOnly),
		"min_magnitude", cfg.MinMagnitude,
		"limit", cfg.ResultLimit,
	)
}

func logSummary(logger *slog.Logger, report pipeline.Report) {
	s := report.Summary
	logger.Info("run complete",
		"events", s.Count,
		"written", report.Written,
		"earliest", s.Earliest.Format(time.RFC3339),
		"latest", s.Latest.Format(time.RFC3339),
	)
	logger.Info("events by severity", countAttrs(s.BySeverity)...)
	logger.Info("events by continent", countAttrs(s.ByContinent)...)
	logger.Info("output schema", "columns", domain.Columns)

	if report.WriteErr != nil {
		logger.Warn("output file was not written", "error", report.WriteErr)
	}
}

// countAttrs flattens a label count map into sorted slog key/value pairs.
// The empty label is reported as "unbinned".
func countAttrs[K ~string](counts map[K]int) []any {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	attrs := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		label := k
		if label == "" {
			label = "unbinned"
		}
		attrs = append(attrs, label, counts[K(k)])
	}
	return attrs
}

func pushMetrics(logger *slog.Logger, cfg *config.Config, metrics *observability.Metrics) {
	if cfg.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := observability.Push(ctx, metrics, cfg.PushgatewayURL, cfg.PushgatewayJob); err != nil {
		logger.Error("metrics push failed", "error", err)
		return
	}
	logger.Debug("metrics pushed", "gateway", cfg.PushgatewayURL, "job", cfg.PushgatewayJob)
}
