package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"algowoo/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery_ReturnsJSON500(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("info", &buf)
	r := gin.New()
	r.Use(Recovery(log))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
}

func TestLogger_RecordsRequests(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(logger.NewWithOutput("info", &buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Contains(t, buf.String(), "GET /ok")
	assert.Contains(t, buf.String(), "status=418")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://shop.test"))
	r.PUT("/api/v1/settings", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/settings", nil)
	req.Header.Set("Origin", "https://shop.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOriginsSendsNoHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/api/v1/settings", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req.Header.Set("Origin", "https://evil.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnlistedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://shop.test"))
	r.GET("/api/v1/settings", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req.Header.Set("Origin", "https://evil.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type staticVerifier map[string]string

func (v staticVerifier) Verify(raw string) (string, error) {
	if subject, ok := v[raw]; ok {
		return subject, nil
	}
	return "", errors.New("unknown token")
}

func TestAuth(t *testing.T) {
	r := gin.New()
	r.Use(Auth(staticVerifier{"good": "shop-admin"}))
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, Subject(c)) })

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic Z29vZA==", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "shop-admin", w.Body.String())
			}
		})
	}
}
