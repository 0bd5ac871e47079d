package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the context key holding the authenticated admin.
const SubjectKey = "subject"

// SubjectVerifier validates a raw bearer token and returns its subject.
type SubjectVerifier interface {
	Verify(raw string) (string, error)
}

// Auth rejects requests without a valid Bearer token and stores the token
// subject under SubjectKey.
func Auth(ver SubjectVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		subject, err := ver.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}

// Subject returns the admin authenticated by Auth, or "".
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
