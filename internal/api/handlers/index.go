package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"algowoo/internal/events"
	"algowoo/internal/indexer"
	"algowoo/internal/logger"
	"algowoo/internal/nonce"
	"algowoo/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
)

// Indexer is the send side of the indexing service.
type Indexer interface {
	SendAll(ctx context.Context) (*indexer.Report, error)
	SendProduct(ctx context.Context, id int64) (*indexer.Report, error)
	PublishEvent(ctx context.Context, id int64) (*indexer.Report, error)
}

// EventPublisher queues indexing work for the worker.
type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type IndexHandler struct {
	indexer   Indexer
	publisher EventPublisher
	nonces    *nonce.Issuer
	logger    *logger.Logger
}

// NewIndexHandler builds the send handlers. A nil publisher makes every
// send run inline.
func NewIndexHandler(idx Indexer, publisher EventPublisher, nonces *nonce.Issuer, logger *logger.Logger) *IndexHandler {
	return &IndexHandler{
		indexer:   idx,
		publisher: publisher,
		nonces:    nonces,
		logger:    logger,
	}
}

// SendAll pushes every published product to the configured index.
func (h *IndexHandler) SendAll(c *gin.Context) {
	if !verifyToken(c, h.nonces, nonce.ActionSendProducts) {
		return
	}

	if h.publisher != nil {
		event := events.NewSyncRequested()
		if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
			h.logger.Error("Failed to queue sync: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to queue sync"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"event_id": event.ID,
			"notice":   indexer.Notice{Type: indexer.NoticeInfo, Message: "Sync queued."},
		})
		return
	}

	report, err := h.indexer.SendAll(c.Request.Context())
	h.respond(c, report, err)
}

// SendProduct pushes a single product by id.
func (h *IndexHandler) SendProduct(c *gin.Context) {
	if !verifyToken(c, h.nonces, nonce.ActionSendProducts) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	report, err := h.indexer.SendProduct(c.Request.Context(), id)
	h.respond(c, report, err)
}

func (h *IndexHandler) respond(c *gin.Context, report *indexer.Report, err error) {
	notice := indexer.NoticeFor(report, err)
	if err != nil {
		h.logger.Error("Send failed: %v", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "notice": notice})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report, "notice": notice})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, indexer.ErrNotConfigured):
		return http.StatusBadRequest
	case errors.Is(err, indexer.ErrNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, woocommerce.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
