package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"algowoo/internal/api/handlers"
	"algowoo/internal/api/middleware"
	"algowoo/internal/config"
	"algowoo/internal/logger"
	"algowoo/internal/nonce"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the HTTP API drives. Auth verifies admin
// bearer tokens. Publisher is optional; without it every send runs inside
// the request.
type Dependencies struct {
	Auth       middleware.SubjectVerifier
	Settings   handlers.SettingsStore
	Attributes handlers.AttributeLister
	Indexer    handlers.Indexer
	Webhooks   handlers.WebhookDecoder
	Nonces     *nonce.Issuer
	Publisher  handlers.EventPublisher
}

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, deps Dependencies) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins...))

	settingsHandler := handlers.NewSettingsHandler(deps.Settings, deps.Attributes, deps.Nonces, logger)
	indexHandler := handlers.NewIndexHandler(deps.Indexer, deps.Publisher, deps.Nonces, logger)
	webhookHandler := handlers.NewWebhookHandler(deps.Webhooks, deps.Indexer, deps.Publisher, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// WooCommerce authenticates with the webhook signature.
		v1.POST("/webhooks/woocommerce", webhookHandler.WooCommerce)

		admin := v1.Group("", middleware.Auth(deps.Auth))
		{
			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)
			admin.POST("/settings/activate", settingsHandler.Activate)
			admin.GET("/attributes", settingsHandler.Attributes)

			index := admin.Group("/index")
			{
				index.POST("/send", indexHandler.SendAll)
				index.POST("/products/:id", indexHandler.SendProduct)
			}
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	// Large catalogs are sent inside the request unless a publisher is set.
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
