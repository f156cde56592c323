package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/kvckarthik/sportsData/internal/config"
	"github.com/kvckarthik/sportsData/internal/logging"
	"github.com/kvckarthik/sportsData/internal/metrics"
	"github.com/kvckarthik/sportsData/internal/run"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nfl-scoreboard-explorer",
		Version: appVersion,
		RunID:   uuid.NewString(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, gatherer, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		os.Exit(1)
	}

	runner := run.New(cfg, logger, recorder, os.Stdout)
	runErr := runner.Run(ctx)

	metrics.LogSummary(gatherer, logger)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsStop(shutdownCtx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}

	if runErr != nil {
		logging.Error(logger, "run failed", runErr)
		os.Exit(1)
	}
}
