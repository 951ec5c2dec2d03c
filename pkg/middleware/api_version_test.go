package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIVersionMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("Adds version headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := APIVersionMiddleware(CurrentAPIVersion)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))

		assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Version"))
		assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Latest-Version"))
		assert.Empty(t, rec.Header().Get("Deprecation"))
	})

	t.Run("Adds deprecation headers when deprecated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		deprecated := APIVersion{
			Version:         "0.9.0",
			LatestVersion:   "1.0.0",
			DeprecationDate: "2026-01-01",
			SunsetDate:      "2026-06-01",
		}
		handler := APIVersionMiddleware(deprecated)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))

		assert.Equal(t, "true", rec.Header().Get("Deprecation"))
		assert.Equal(t, "2026-06-01", rec.Header().Get("Sunset"))
	})
}

func TestVersionInfo(t *testing.T) {
	info := VersionInfo(CurrentAPIVersion)

	assert.Equal(t, "1.0.0", info["version"])
	assert.NotContains(t, info, "deprecated")

	deprecated := VersionInfo(APIVersion{Version: "0.9.0", LatestVersion: "1.0.0", DeprecationDate: "2026-01-01"})
	assert.Equal(t, true, deprecated["deprecated"])
}
