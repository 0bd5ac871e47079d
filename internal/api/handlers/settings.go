package handlers

import (
	"context"
	"net/http"

	"algowoo/internal/logger"
	"algowoo/internal/nonce"
	"algowoo/internal/services/woocommerce"
	"algowoo/internal/settings"

	"github.com/gin-gonic/gin"
)

// SettingsStore loads and persists the indexer configuration.
type SettingsStore interface {
	Load(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, form settings.Form) (settings.Settings, error)
	Activate(ctx context.Context) error
}

// AttributeLister lists the shop's global attributes for the whitelist.
type AttributeLister interface {
	ListAttributes(ctx context.Context) ([]woocommerce.AttributeTaxonomy, error)
}

type SettingsHandler struct {
	store      SettingsStore
	attributes AttributeLister
	nonces     *nonce.Issuer
	logger     *logger.Logger
}

func NewSettingsHandler(store SettingsStore, attributes AttributeLister, nonces *nonce.Issuer, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:      store,
		attributes: attributes,
		nonces:     nonces,
		logger:     logger,
	}
}

// Get returns the current settings with the API key masked, plus fresh
// action tokens for the settings and send forms bound to the caller.
func (h *SettingsHandler) Get(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	s, err := h.store.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	tokens := gin.H{}
	for _, action := range []string{nonce.ActionUpdateSettings, nonce.ActionSendProducts} {
		token, err := h.nonces.Issue(action, subject)
		if err != nil {
			h.logger.Error("Failed to issue %s token: %v", action, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue action token"})
			return
		}
		tokens[action] = token
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         s.Masked(),
		"basic_fields": settings.BasicFields,
		"tokens":       tokens,
	})
}

// Update saves the submitted settings form.
func (h *SettingsHandler) Update(c *gin.Context) {
	if !verifyToken(c, h.nonces, nonce.ActionUpdateSettings) {
		return
	}

	var form settings.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.store.Save(c.Request.Context(), form)
	if err != nil {
		h.logger.Error("Failed to save settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   s.Masked(),
		"notice": gin.H{"type": "success", "message": "Settings saved."},
	})
}

// Activate seeds default options for a fresh install.
func (h *SettingsHandler) Activate(c *gin.Context) {
	if !verifyToken(c, h.nonces, nonce.ActionUpdateSettings) {
		return
	}

	if err := h.store.Activate(c.Request.Context()); err != nil {
		h.logger.Error("Failed to activate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed default settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default settings seeded"})
}

// Attributes lists the global attributes that can be whitelisted or
// interpolated.
func (h *SettingsHandler) Attributes(c *gin.Context) {
	if _, ok := requireSubject(c); !ok {
		return
	}
	attrs, err := h.attributes.ListAttributes(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list attributes: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch attributes from WooCommerce"})
		return
	}
	if len(attrs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"data":    attrs,
			"message": "You don't have any attributes defined yet. Go to WooCommerce and add some to use this feature.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": attrs})
}
