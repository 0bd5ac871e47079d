package indexer

import (
	"context"
	"fmt"
	"time"

	"algowoo/internal/logger"
	"algowoo/internal/metrics"
	"algowoo/internal/models"
	"algowoo/internal/settings"
)

// Catalog gives read access to the shop's products.
type Catalog interface {
	// Products returns every published product.
	Products(ctx context.Context) ([]*models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
}

// SettingsProvider supplies the current configuration snapshot.
type SettingsProvider interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// ClientFactory builds an index client for a set of credentials.
type ClientFactory func(applicationID, apiKey string) (IndexClient, error)

// Service exposes the send triggers: everything on demand, a single product
// on demand, and a single product on publish.
type Service struct {
	settings  SettingsProvider
	catalog   Catalog
	newClient ClientFactory
	sender    *Sender
	logger    *logger.Logger
}

func NewService(provider SettingsProvider, catalog Catalog, factory ClientFactory, sender *Sender, logger *logger.Logger) *Service {
	return &Service{
		settings:  provider,
		catalog:   catalog,
		newClient: factory,
		sender:    sender,
		logger:    logger,
	}
}

// SendAll sends every published product.
func (s *Service) SendAll(ctx context.Context) (*Report, error) {
	defer observe("all", time.Now())

	cfg, client, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	s.logger.Info("Sending %d products to index %s", len(products), cfg.IndexName)

	return s.sender.Send(ctx, client, cfg.IndexName, NewMapper(cfg), products)
}

// SendProduct sends one product, provided it is published.
func (s *Service) SendProduct(ctx context.Context, id int64) (*Report, error) {
	defer observe("single", time.Now())

	cfg, client, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}
	return s.sendOne(ctx, cfg, client, id)
}

// PublishEvent handles a product being published. It only sends when
// automatic indexing of new products is switched on.
func (s *Service) PublishEvent(ctx context.Context, id int64) (*Report, error) {
	defer observe("publish", time.Now())

	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !cfg.AutoSendNewProducts {
		s.logger.Debug("Ignoring publish of product %d: auto send disabled", id)
		return nil, ErrAutoSendDisabled
	}

	client, err := s.client(cfg)
	if err != nil {
		return nil, err
	}
	return s.sendOne(ctx, cfg, client, id)
}

func (s *Service) sendOne(ctx context.Context, cfg settings.Settings, client IndexClient, id int64) (*Report, error) {
	product, err := s.catalog.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	if !product.IsPublished() {
		return nil, fmt.Errorf("product %d has status %q: %w", id, product.Status, ErrNotEligible)
	}
	return s.sender.Send(ctx, client, cfg.IndexName, NewMapper(cfg), []*models.Product{product})
}

func (s *Service) prepare(ctx context.Context) (settings.Settings, IndexClient, error) {
	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return settings.Settings{}, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	client, err := s.client(cfg)
	if err != nil {
		return settings.Settings{}, nil, err
	}
	return cfg, client, nil
}

func (s *Service) client(cfg settings.Settings) (IndexClient, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	client, err := s.newClient(cfg.ApplicationID, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create index client: %w", err)
	}
	return client, nil
}

func observe(trigger string, start time.Time) {
	metrics.SendDuration.WithLabelValues(trigger).Observe(time.Since(start).Seconds())
}
