package woocommerce

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"algowoo/internal/logger"
	"algowoo/internal/models"
	wc "algowoo/internal/services/woocommerce"
)

const (
	pageSize = 100
	// maxPages caps the walk at 100000 products.
	maxPages = 1000
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrNoWebhookSecret  = errors.New("webhook secret is not configured")
)

// ProductAPI is the part of the REST client the connector needs.
type ProductAPI interface {
	ListProducts(ctx context.Context, page, perPage int, status string) (*wc.ProductsPage, error)
	GetProduct(ctx context.Context, id int64) (*wc.Product, error)
}

// WooCommerceConnector exposes a shop as an indexer catalog and decodes its
// product webhooks.
type WooCommerceConnector struct {
	api           ProductAPI
	transformer   *wc.Transformer
	webhookSecret string
	logger        *logger.Logger
}

func New(api ProductAPI, webhookSecret string, logger *logger.Logger) *WooCommerceConnector {
	return &WooCommerceConnector{
		api:           api,
		transformer:   wc.NewTransformer(),
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Products walks every page of published products. Without a page count
// it stops at a short page, at a page repeating the previous one, or after
// maxPages.
func (c *WooCommerceConnector) Products(ctx context.Context) ([]*models.Product, error) {
	var out []*models.Product
	var prevFirst int64
	for page := 1; page <= maxPages; page++ {
		resp, err := c.api.ListProducts(ctx, page, pageSize, string(models.ProductStatusPublish))
		if err != nil {
			return nil, fmt.Errorf("failed to list products page %d: %w", page, err)
		}

		if resp.TotalPages == 0 && len(resp.Products) > 0 {
			if page > 1 && resp.Products[0].ID == prevFirst {
				c.logger.Warn("Products page %d repeats page %d, stopping", page, page-1)
				break
			}
			prevFirst = resp.Products[0].ID
		}

		for i := range resp.Products {
			p, err := c.transformer.TransformProduct(&resp.Products[i])
			if err != nil {
				c.logger.Error("Skipping product: %v", err)
				continue
			}
			out = append(out, p)
		}

		c.logger.Debug("Fetched products page %d/%d", page, resp.TotalPages)
		if resp.TotalPages > 0 {
			if page >= resp.TotalPages {
				break
			}
		} else if len(resp.Products) < pageSize {
			break
		}
		if page == maxPages {
			c.logger.Warn("Stopped listing products after %d pages", maxPages)
		}
	}
	return out, nil
}

// Product fetches and converts one product.
func (c *WooCommerceConnector) Product(ctx context.Context, id int64) (*models.Product, error) {
	p, err := c.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.transformer.TransformProduct(p)
}

// ProductEvent is a verified product webhook.
type ProductEvent struct {
	ProductID int64
	Status    models.ProductStatus
	Product   *models.Product
}

// HandleWebhook verifies the X-WC-Webhook-Signature of payload and decodes
// the product it carries.
func (c *WooCommerceConnector) HandleWebhook(payload []byte, signature string) (*ProductEvent, error) {
	if err := c.VerifySignature(payload, signature); err != nil {
		return nil, err
	}

	var product wc.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	p, err := c.transformer.TransformProduct(&product)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Received WooCommerce webhook for product %d (%s)", p.ID, p.Status)
	return &ProductEvent{
		ProductID: p.ID,
		Status:    p.Status,
		Product:   p,
	}, nil
}

// VerifySignature checks a base64 HMAC-SHA256 of payload keyed with the
// webhook secret.
func (c *WooCommerceConnector) VerifySignature(payload []byte, signature string) error {
	if c.webhookSecret == "" {
		return ErrNoWebhookSecret
	}
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(got, Sign(payload, c.webhookSecret)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign computes the raw webhook signature for payload.
func Sign(payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}
