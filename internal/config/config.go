package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// maxResultLimit is the largest page the FDSN event service will return.
const maxResultLimit = 20000

// Config holds all run settings, populated from environment variables.
type Config struct {
	USGSURL      string
	USGSTimeout  time.Duration
	LookbackDays int
	MinMagnitude float64
	ResultLimit  int

	DataDir    string
	OutputFile string

	// NoiseSeed seeds the coast distance noise source. Nil means a random seed.
	NoiseSeed *uint64

	LogLevel  string
	LogFormat string

	// Pushgateway is disabled when PushgatewayURL is empty.
	PushgatewayURL string
	PushgatewayJob string
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is loaded first if present.
// Every invalid setting is reported in the returned error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var errs error

	timeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("USGS_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		errs = multierror.Append(errs, errors.New("invalid USGS_TIMEOUT"))
	}

	lookback, err := strconv.Atoi(sharedcfg.EnvOrDefault("LOOKBACK_DAYS", "365"))
	if err != nil || lookback <= 0 {
		errs = multierror.Append(errs, errors.New("invalid LOOKBACK_DAYS"))
	}

	minMag, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("MIN_MAGNITUDE", "2.5"), 64)
	if err != nil {
		errs = multierror.Append(errs, errors.New("invalid MIN_MAGNITUDE"))
	}

	limit, err := strconv.Atoi(sharedcfg.EnvOrDefault("RESULT_LIMIT", "1000"))
	if err != nil || limit <= 0 || limit > maxResultLimit {
		errs = multierror.Append(errs, fmt.Errorf("invalid RESULT_LIMIT: must be between 1 and %d", maxResultLimit))
	}

	seed, err := parseNoiseSeed()
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	cfg := &Config{
		USGSURL:      sharedcfg.EnvOrDefault("USGS_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
		USGSTimeout:  timeout,
		LookbackDays: lookback,
		MinMagnitude: minMag,
		ResultLimit:  limit,

		DataDir:    sharedcfg.EnvOrDefault("DATA_DIR", "datos"),
		OutputFile: sharedcfg.EnvOrDefault("OUTPUT_FILE", "earthquake_data.csv"),
		NoiseSeed:  seed,

		LogLevel:  sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),

		PushgatewayURL: strings.TrimSpace(os.Getenv("PUSHGATEWAY_URL")),
		PushgatewayJob: sharedcfg.EnvOrDefault("PUSHGATEWAY_JOB", "quake_etl"),
	}

	if u, err := url.Parse(cfg.USGSURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierror.Append(errs, errors.New("invalid USGS_URL"))
	}
	if cfg.DataDir == "" {
		errs = multierror.Append(errs, errors.New("DATA_DIR is required"))
	}
	if cfg.OutputFile == "" || strings.ContainsAny(cfg.OutputFile, `/\`) {
		errs = multierror.Append(errs, errors.New("OUTPUT_FILE must be a bare file name"))
	}

	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}

func parseNoiseSeed() (*uint64, error) {
	s := strings.TrimSpace(os.Getenv("NOISE_SEED"))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errors.New("invalid NOISE_SEED")
	}
	return &n, nil
}
