package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/aeris-weather-client/aeris"
	httpadapter "github.com/couchcryptid/aeris-weather-client/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/aeris-weather-client/internal/adapter/kafka"
	"github.com/couchcryptid/aeris-weather-client/internal/collector"
	"github.com/couchcryptid/aeris-weather-client/internal/config"
	"github.com/couchcryptid/aeris-weather-client/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	opts := []aeris.Option{
		aeris.WithLogger(logger),
		aeris.WithHTTPClient(&http.Client{Timeout: cfg.AerisTimeout}),
	}
	if cfg.AerisBaseURL != "" {
		opts = append(opts, aeris.WithBaseURL(cfg.AerisBaseURL))
	}
	if cfg.RetainRawBodies {
		opts = append(opts, aeris.WithRawBodyRetention())
	}
	client := aeris.New(cfg.AerisClientID, cfg.AerisClientSecret, opts...)

	writer := kafkaadapter.NewWriter(cfg, logger)

	c := collector.New(client.AirQuality, writer, cfg.Places, cfg.PollInterval,
		clockwork.NewRealClock(), logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, c, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		logger.Info("collector starting", "places", len(cfg.Places), "interval", cfg.PollInterval)
		if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("collector error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
