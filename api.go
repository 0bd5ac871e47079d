package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"algowoo/internal/api"
	"algowoo/internal/app"
	"algowoo/internal/config"
	"algowoo/internal/logger"
	"algowoo/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once    sync.Once
	router  http.Handler
	initErr error
)

// initRouter builds the API once per serverless instance. Sends always run
// inline here since no worker consumes a queue.
func initRouter() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	log := logger.New(cfg.LogLevel)

	application, err := app.New(cfg, log)
	if err != nil {
		initErr = err
		return
	}
	if err := application.Activate(context.Background()); err != nil {
		initErr = err
		return
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	router = api.New(cfg, log, application.APIDependencies(cfg)).GetRouter()
}

// Handler is the main entry point for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(initRouter)
	if initErr != nil {
		http.Error(w, fmt.Sprintf("Initialization failed: %v", initErr), http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}
