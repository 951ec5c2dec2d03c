package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/avillega/leadtrail/pkg/agents"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentHandlerCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewAgentHandler(agents.NewService(client))

	t.Run("Success - 201 with created agent", func(t *testing.T) {
		body := `{"name":"Alice Agent","email":"alice@example.com","phone":"(202) 555-0143"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/agents", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.AgentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "Alice Agent", resp.Name)
		assert.Equal(t, "+12025550143", resp.Phone)
	})

	t.Run("Error - 400 on malformed email", func(t *testing.T) {
		body := `{"name":"Bob Agent","email":"not-an-email"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/agents", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Error - 400 on invalid phone", func(t *testing.T) {
		body := `{"name":"Bob Agent","email":"bob@example.com","phone":"99999"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/agents", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - 409 on duplicate email", func(t *testing.T) {
		body := `{"name":"Alice Clone","email":"alice@example.com"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/agents", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "conflict", resp.Error)
	})
}

func TestAgentHandlerGetAndList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := agents.NewService(client)
	handler := NewAgentHandler(service)

	created, err := service.Create(context.Background(), models.CreateAgentRequest{
		Name:  "Alice Agent",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	t.Run("Success - List returns agents", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/agents", "")

		require.NoError(t, handler.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []models.AgentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, created.ID, resp[0].ID)
	})

	t.Run("Success - GetByID", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/agents/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Error - 404 on missing agent", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/agents/99999", "")
		c.SetParamNames("id")
		c.SetParamValues("99999")

		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAgentHandlerDelete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := agents.NewService(client)
	handler := NewAgentHandler(service)

	created, err := service.Create(context.Background(), models.CreateAgentRequest{
		Name:  "Alice Agent",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	t.Run("Error - 409 while agent still owns leads", func(t *testing.T) {
		l, err := client.Lead.
			Create().
			SetName("Acme Corp").
			SetSource("website").
			SetSalesAgentID(created.ID).
			SetTimeToClose(30).
			Save(context.Background())
		require.NoError(t, err)

		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/agents/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Delete(c))

		assert.Equal(t, http.StatusConflict, rec.Code)

		require.NoError(t, client.Lead.DeleteOneID(l.ID).Exec(context.Background()))
	})

	t.Run("Success - 200 once leads are gone", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/agents/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Delete(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
