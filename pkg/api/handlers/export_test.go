package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/avillega/leadtrail/pkg/export"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	leadService := leads.NewService(client)
	handler := NewExportHandler(export.NewService(leadService, 100), sharedMetrics())

	agent := createLeadTestAgent(t, client, "alice@example.com")
	_, err := leadService.Create(context.Background(), models.CreateLeadRequest{
		Name: "Acme Corp", Source: "website", SalesAgentID: agent.ID, TimeToClose: 30,
	})
	require.NoError(t, err)

	t.Run("Success - CSV download by default", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/export", "")

		require.NoError(t, handler.Export(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, rec.Body.String(), "Acme Corp")
	})

	t.Run("Success - Excel format", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/export?format=excel", "")

		require.NoError(t, handler.Export(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasSuffix(extractFilename(rec.Header().Get("Content-Disposition")), ".xlsx"))
		assert.NotEmpty(t, rec.Body.Bytes())
	})

	t.Run("Error - 400 on unknown format", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/export?format=pdf", "")

		require.NoError(t, handler.Export(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Error - 400 on invalid filter", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/export?status=bogus", "")

		require.NoError(t, handler.Export(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func extractFilename(disposition string) string {
	const marker = `filename="`
	start := strings.Index(disposition, marker)
	if start < 0 {
		return ""
	}
	rest := disposition[start+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return rest
	}
	return rest[:end]
}
