package app

import (
	"context"
	"fmt"

	"algowoo/internal/api"
	"algowoo/internal/auth"
	wcconnector "algowoo/internal/connectors/woocommerce"
	"algowoo/internal/config"
	"algowoo/internal/database"
	"algowoo/internal/indexer"
	"algowoo/internal/logger"
	"algowoo/internal/nonce"
	"algowoo/internal/services/algolia"
	"algowoo/internal/services/woocommerce"
	"algowoo/internal/settings"
)

// App holds the services shared by the API server, the worker and the
// serverless entry point.
type App struct {
	DB          *database.Database
	Settings    *settings.Provider
	WooCommerce *woocommerce.Client
	Connector   *wcconnector.WooCommerceConnector
	Indexer     *indexer.Service
}

// New opens the options store and wires the indexing service.
func New(cfg *config.Config, logger *logger.Logger) (*App, error) {
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return NewWithDatabase(cfg, logger, db, algolia.Factory), nil
}

// NewWithDatabase wires the services on top of an already opened store.
func NewWithDatabase(cfg *config.Config, logger *logger.Logger, db *database.Database, factory indexer.ClientFactory) *App {
	provider := settings.NewProvider(settings.NewStore(db.DB))
	wc := woocommerce.NewClient(cfg.WooCommerceURL, cfg.WooCommerceConsumerKey, cfg.WooCommerceConsumerSecret, cfg.WooCommerceRPS, logger)
	connector := wcconnector.New(wc, cfg.WooCommerceWebhookSecret, logger)
	sender := indexer.NewSender(cfg.AlgoliaBatchSize, logger)

	return &App{
		DB:          db,
		Settings:    provider,
		WooCommerce: wc,
		Connector:   connector,
		Indexer:     indexer.NewService(provider, connector, factory, sender, logger),
	}
}

// Activate seeds the default options of a fresh install.
func (a *App) Activate(ctx context.Context) error {
	if err := a.Settings.Activate(ctx); err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}
	return nil
}

// APIDependencies returns the dependencies of the HTTP API. Sends run
// inline until a publisher is attached.
func (a *App) APIDependencies(cfg *config.Config) api.Dependencies {
	return api.Dependencies{
		Auth:       auth.New(cfg.AdminJWTSecret),
		Settings:   a.Settings,
		Attributes: a.WooCommerce,
		Indexer:    a.Indexer,
		Webhooks:   a.Connector,
		Nonces:     nonce.New(cfg.JWTSecret, cfg.TokenTTL),
	}
}

func (a *App) Close() error {
	return a.DB.Close()
}
