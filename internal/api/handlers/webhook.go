package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	wcconnector "algowoo/internal/connectors/woocommerce"
	"algowoo/internal/events"
	"algowoo/internal/indexer"
	"algowoo/internal/logger"
	"algowoo/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "X-WC-Webhook-Signature"
	TopicHeader     = "X-WC-Webhook-Topic"

	maxWebhookBody = 1 << 20
)

// WebhookDecoder verifies and decodes WooCommerce product webhooks.
type WebhookDecoder interface {
	HandleWebhook(payload []byte, signature string) (*wcconnector.ProductEvent, error)
}

type WebhookHandler struct {
	decoder   WebhookDecoder
	indexer   Indexer
	publisher EventPublisher
	logger    *logger.Logger
}

func NewWebhookHandler(decoder WebhookDecoder, idx Indexer, publisher EventPublisher, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		decoder:   decoder,
		indexer:   idx,
		publisher: publisher,
		logger:    logger,
	}
}

// WooCommerce handles product.created and product.updated deliveries.
// Published products are queued for the worker, or sent inline when no
// publisher is configured.
func (h *WebhookHandler) WooCommerce(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	// WooCommerce pings a new webhook with a form body before any delivery.
	if bytes.HasPrefix(payload, []byte("webhook_id=")) {
		c.JSON(http.StatusOK, gin.H{"status": "pong"})
		return
	}

	delivery := woocommerce.WebhookDelivery{
		Topic:      c.GetHeader(TopicHeader),
		Resource:   c.GetHeader("X-WC-Webhook-Resource"),
		Event:      c.GetHeader("X-WC-Webhook-Event"),
		DeliveryID: c.GetHeader("X-WC-Webhook-Delivery-ID"),
		ReceivedAt: time.Now().UTC(),
	}
	log := h.logger.With(map[string]interface{}{
		"topic":       delivery.Topic,
		"delivery_id": delivery.DeliveryID,
	})

	if delivery.Topic != "product.created" && delivery.Topic != "product.updated" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "unsupported topic"})
		return
	}

	event, err := h.decoder.HandleWebhook(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		if errors.Is(err, wcconnector.ErrInvalidSignature) || errors.Is(err, wcconnector.ErrNoWebhookSecret) {
			log.Warn("Rejected webhook: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !event.Product.IsPublished() {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "product is not published"})
		return
	}

	if h.publisher != nil {
		e := events.NewProductPublished(event.ProductID)
		if err := h.publisher.Publish(c.Request.Context(), e); err != nil {
			log.Error("Failed to queue product %d: %v", event.ProductID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to queue product"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "queued", "event_id": e.ID})
		return
	}

	report, err := h.indexer.PublishEvent(c.Request.Context(), event.ProductID)
	switch {
	case errors.Is(err, indexer.ErrAutoSendDisabled), errors.Is(err, indexer.ErrNotEligible):
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": err.Error()})
	case err != nil:
		log.Error("Failed to index product %d: %v", event.ProductID, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "sent", "data": report})
	}
}
