package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/aeris-weather-client/aeris"
)

// Config holds all collector settings, populated from environment
// variables.
type Config struct {
	// Aeris API credentials and host override.
	AerisClientID     string
	AerisClientSecret string
	AerisBaseURL      string
	AerisTimeout      time.Duration

	// Places polled each cycle, as Aeris place strings. Semicolon
	// separated in the environment because place strings themselves
	// contain commas ("minneapolis,mn;paris,fr").
	Places []string

	PollInterval time.Duration

	// RetainRawBodies keeps raw API response bodies after parsing.
	// Off by default to bound memory use.
	RetainRawBodies bool

	KafkaBrokers []string
	KafkaTopic   string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying
// defaults where unset.
func Load() (*Config, error) {
	pollInterval, err := parseDuration("POLL_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	aerisTimeout, err := parseDuration("AERIS_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	retainRaw := false
	if v := os.Getenv("RETAIN_RAW_BODIES"); v != "" {
		retainRaw, err = aeris.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RETAIN_RAW_BODIES: %w", err)
		}
	}

	cfg := &Config{
		AerisClientID:     os.Getenv("AERIS_CLIENT_ID"),
		AerisClientSecret: os.Getenv("AERIS_CLIENT_SECRET"),
		AerisBaseURL:      os.Getenv("AERIS_BASE_URL"),
		AerisTimeout:      aerisTimeout,
		Places:            splitOn(os.Getenv("PLACES"), ";"),
		PollInterval:      pollInterval,
		RetainRawBodies:   retainRaw,
		KafkaBrokers:      splitOn(envOrDefault("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:        envOrDefault("KAFKA_TOPIC", "airquality-observations"),
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,
	}

	if cfg.AerisClientID == "" || cfg.AerisClientSecret == "" {
		return nil, errors.New("AERIS_CLIENT_ID and AERIS_CLIENT_SECRET are required")
	}
	if len(cfg.Places) == 0 {
		return nil, errors.New("PLACES is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

// splitOn parses a separated list, dropping empty entries.
func splitOn(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
