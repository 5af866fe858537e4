package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AERIS_CLIENT_ID", "test-id")
	t.Setenv("AERIS_CLIENT_SECRET", "test-secret")
	t.Setenv("PLACES", "minneapolis,mn;paris,fr")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-id", cfg.AerisClientID)
	assert.Equal(t, "test-secret", cfg.AerisClientSecret)
	assert.Empty(t, cfg.AerisBaseURL)
	assert.Equal(t, 30*time.Second, cfg.AerisTimeout)
	assert.Equal(t, []string{"minneapolis,mn", "paris,fr"}, cfg.Places)
	assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	assert.False(t, cfg.RetainRawBodies)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "airquality-observations", cfg.KafkaTopic)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AERIS_BASE_URL", "http://localhost:8181")
	t.Setenv("AERIS_TIMEOUT", "5s")
	t.Setenv("POLL_INTERVAL", "1m")
	t.Setenv("RETAIN_RAW_BODIES", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-topic")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8181", cfg.AerisBaseURL)
	assert.Equal(t, 5*time.Second, cfg.AerisTimeout)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.True(t, cfg.RetainRawBodies)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-topic", cfg.KafkaTopic)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("PLACES", "minneapolis,mn")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AERIS_CLIENT_ID")
}

func TestLoad_MissingPlaces(t *testing.T) {
	t.Setenv("AERIS_CLIENT_ID", "test-id")
	t.Setenv("AERIS_CLIENT_SECRET", "test-secret")
	t.Setenv("PLACES", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLACES")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidRetainRawBodies(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RETAIN_RAW_BODIES", "maybe")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RETAIN_RAW_BODIES")
}

func TestLoad_PlacesDropsEmptyEntries(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACES", "minneapolis,mn; ;paris,fr;")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"minneapolis,mn", "paris,fr"}, cfg.Places)
}
