package handlers

import (
	"net/http"

	"algowoo/internal/api/middleware"
	"algowoo/internal/nonce"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the action token; forms may send it as _token instead.
const TokenHeader = "X-Action-Token"

// requireSubject aborts with 401 unless an admin was authenticated.
func requireSubject(c *gin.Context) (string, bool) {
	subject := middleware.Subject(c)
	if subject == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
		return "", false
	}
	return subject, true
}

// verifyToken checks the action token against the authenticated admin.
func verifyToken(c *gin.Context, nonces *nonce.Issuer, action string) bool {
	subject, ok := requireSubject(c)
	if !ok {
		return false
	}
	token := c.GetHeader(TokenHeader)
	if token == "" {
		token = c.Query("_token")
	}
	if token == "" {
		token = c.PostForm("_token")
	}
	if err := nonces.Verify(token, action, subject); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Action not allowed."})
		return false
	}
	return true
}
