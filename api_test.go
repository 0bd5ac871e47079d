package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"algowoo/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServesAndRegistersCollectors(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "vercel.db"))
	t.Setenv("LOG_LEVEL", "error")

	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var already prometheus.AlreadyRegisteredError
	err := prometheus.DefaultRegisterer.Register(metrics.DocumentsSent)
	assert.True(t, errors.As(err, &already))

	w = httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
