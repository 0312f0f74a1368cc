package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultUSGSURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultUSGSURL, cfg.USGSURL)
	assert.Equal(t, 30*time.Second, cfg.USGSTimeout)
	assert.Equal(t, 365, cfg.LookbackDays)
	assert.InDelta(t, 2.5, cfg.MinMagnitude, 1e-9)
	assert.Equal(t, 1000, cfg.ResultLimit)
	assert.Equal(t, "datos", cfg.DataDir)
	assert.Equal(t, "earthquake_data.csv", cfg.OutputFile)
	assert.Nil(t, cfg.NoiseSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.PushgatewayURL)
	assert.Equal(t, "quake_etl", cfg.PushgatewayJob)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("USGS_URL", "http://localhost:9999/query")
	t.Setenv("USGS_TIMEOUT", "5s")
	t.Setenv("LOOKBACK_DAYS", "30")
	t.Setenv("MIN_MAGNITUDE", "4.5")
	t.Setenv("RESULT_LIMIT", "200")
	t.Setenv("DATA_DIR", "/tmp/quakes")
	t.Setenv("OUTPUT_FILE", "out.csv")
	t.Setenv("NOISE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")
	t.Setenv("PUSHGATEWAY_JOB", "quakes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/query", cfg.USGSURL)
	assert.Equal(t, 5*time.Second, cfg.USGSTimeout)
	assert.Equal(t, 30, cfg.LookbackDays)
	assert.InDelta(t, 4.5, cfg.MinMagnitude, 1e-9)
	assert.Equal(t, 200, cfg.ResultLimit)
	assert.Equal(t, "/tmp/quakes", cfg.DataDir)
	assert.Equal(t, "out.csv", cfg.OutputFile)
	require.NotNil(t, cfg.NoiseSeed)
	assert.Equal(t, uint64(42), *cfg.NoiseSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
	assert.Equal(t, "quakes", cfg.PushgatewayJob)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("USGS_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USGS_TIMEOUT")
}

func TestLoad_NegativeTimeout(t *testing.T) {
	t.Setenv("USGS_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USGS_TIMEOUT")
}

func TestLoad_InvalidLookback(t *testing.T) {
	t.Setenv("LOOKBACK_DAYS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOOKBACK_DAYS")
}

func TestLoad_ResultLimitTooLarge(t *testing.T) {
	t.Setenv("RESULT_LIMIT", "50000")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESULT_LIMIT")
}

func TestLoad_InvalidMinMagnitude(t *testing.T) {
	t.Setenv("MIN_MAGNITUDE", "strong")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIN_MAGNITUDE")
}

func TestLoad_InvalidNoiseSeed(t *testing.T) {
	t.Setenv("NOISE_SEED", "-3")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOISE_SEED")
}

func TestLoad_InvalidURL(t *testing.T) {
	t.Setenv("USGS_URL", "earthquake.usgs.gov")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USGS_URL")
}

func TestLoad_OutputFileWithDirectory(t *testing.T) {
	t.Setenv("OUTPUT_FILE", "nested/out.csv")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_FILE")
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	t.Setenv("USGS_TIMEOUT", "bad")
	t.Setenv("LOOKBACK_DAYS", "bad")
	t.Setenv("RESULT_LIMIT", "bad")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USGS_TIMEOUT")
	assert.Contains(t, err.Error(), "LOOKBACK_DAYS")
	assert.Contains(t, err.Error(), "RESULT_LIMIT")
}
