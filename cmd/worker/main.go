package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"algowoo/internal/app"
	"algowoo/internal/config"
	"algowoo/internal/logger"
	"algowoo/internal/metrics"
	"algowoo/internal/worker"
	"algowoo/internal/worker/processors"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer application.Close()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	// Initialize worker
	w := worker.New(cfg, logger, processors.NewEventProcessor(application.Indexer, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting worker...")
	w.Start(ctx)

	logger.Info("Shutting down worker...")
	w.Stop()
}
