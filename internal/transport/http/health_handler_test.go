package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zttzhu/dataset-insights/internal/services"
	"github.com/zttzhu/dataset-insights/pkg/contracts"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(services.NewHealthService("9.9.9", nil), nil)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body services.HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "9.9.9", body.Version)
	})

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var info contracts.VersionInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, contracts.AppName, info.Name)
		assert.Equal(t, contracts.Version, info.Version)
	})
}
