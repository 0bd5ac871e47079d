package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"algowoo/internal/api"
	"algowoo/internal/app"
	"algowoo/internal/config"
	"algowoo/internal/events"
	"algowoo/internal/logger"
	"algowoo/internal/metrics"

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

	if err := application.Activate(context.Background()); err != nil {
		logger.Fatal("%v", err)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	deps := application.APIDependencies(cfg)
	if cfg.AsyncIndexing {
		publisher := events.NewPublisher(cfg.Brokers(), cfg.KafkaTopic)
		defer publisher.Close()
		deps.Publisher = publisher
		logger.Info("Async indexing enabled, publishing to topic %s", cfg.KafkaTopic)
	}

	// Initialize API server
	server := api.New(cfg, logger, deps)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}
