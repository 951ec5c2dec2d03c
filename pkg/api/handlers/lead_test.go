package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLeadTestAgent(t *testing.T, client *ent.Client, email string) *ent.SalesAgent {
	agent, err := client.SalesAgent.
		Create().
		SetName("Alice Agent").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func TestLeadHandlerCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewLeadHandler(leads.NewService(client), sharedMetrics())
	agent := createLeadTestAgent(t, client, "alice@example.com")

	t.Run("Success - 201 with created lead", func(t *testing.T) {
		body := fmt.Sprintf(`{"name":"Acme Corp","source":"website","sales_agent_id":%d,"time_to_close":30,"tags":["hot"]}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.LeadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "Acme Corp", resp.Name)
		assert.Equal(t, "new", resp.Status)
		assert.Equal(t, "medium", resp.Priority)
		assert.Equal(t, []string{"hot"}, resp.Tags)
	})

	t.Run("Error - 400 on invalid source enum", func(t *testing.T) {
		body := fmt.Sprintf(`{"name":"Acme Corp","source":"carrier_pigeon","sales_agent_id":%d,"time_to_close":30}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Error - 400 on non-positive time_to_close", func(t *testing.T) {
		body := fmt.Sprintf(`{"name":"Acme Corp","source":"website","sales_agent_id":%d,"time_to_close":0}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Error - 400 on missing required fields", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", `{"name":"Acme Corp"}`)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - 404 on unknown sales agent", func(t *testing.T) {
		body := `{"name":"Acme Corp","source":"website","sales_agent_id":99999,"time_to_close":30}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", body)

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not_found", resp.Error)
	})
}

func TestLeadHandlerList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := leads.NewService(client)
	handler := NewLeadHandler(service, sharedMetrics())
	agent := createLeadTestAgent(t, client, "alice@example.com")

	ctx := context.Background()
	_, err := service.Create(ctx, models.CreateLeadRequest{
		Name: "Tagged", Source: "website", SalesAgentID: agent.ID, TimeToClose: 30, Tags: []string{"hot"},
	})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.CreateLeadRequest{
		Name: "Untagged", Source: "referral", SalesAgentID: agent.ID, TimeToClose: 10,
	})
	require.NoError(t, err)

	t.Run("Success - 200 with all leads", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads", "")

		require.NoError(t, handler.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.LeadListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("Success - Tag filter returns only matching leads", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads?tag=hot", "")

		require.NoError(t, handler.List(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.LeadListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Tagged", resp.Data[0].Name)
		assert.Equal(t, "hot", resp.Filters.Tag)
	})

	t.Run("Error - 400 on invalid status filter", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads?status=bogus", "")

		require.NoError(t, handler.List(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeadHandlerGetByID(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := leads.NewService(client)
	handler := NewLeadHandler(service, sharedMetrics())
	agent := createLeadTestAgent(t, client, "alice@example.com")

	created, err := service.Create(context.Background(), models.CreateLeadRequest{
		Name: "Acme Corp", Source: "website", SalesAgentID: agent.ID, TimeToClose: 30,
	})
	require.NoError(t, err)

	t.Run("Success - 200 with lead", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.LeadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("Error - 400 on non-numeric ID", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_id", resp.Error)
	})

	t.Run("Error - 404 on missing lead", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/99999", "")
		c.SetParamNames("id")
		c.SetParamValues("99999")

		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLeadHandlerUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := leads.NewService(client)
	handler := NewLeadHandler(service, sharedMetrics())
	agent := createLeadTestAgent(t, client, "alice@example.com")

	created, err := service.Create(context.Background(), models.CreateLeadRequest{
		Name: "Acme Corp", Source: "website", SalesAgentID: agent.ID, TimeToClose: 30,
	})
	require.NoError(t, err)

	t.Run("Success - 200 closing stamps closed_at", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/leads/1", `{"status":"closed"}`)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Update(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.LeadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "closed", resp.Status)
		assert.NotNil(t, resp.ClosedAt)
	})

	t.Run("Error - 400 on invalid status enum", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/leads/1", `{"status":"bogus"}`)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Update(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - 404 on missing lead", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/leads/99999", `{"name":"Ghost"}`)
		c.SetParamNames("id")
		c.SetParamValues("99999")

		require.NoError(t, handler.Update(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLeadHandlerDelete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := leads.NewService(client)
	handler := NewLeadHandler(service, sharedMetrics())
	agent := createLeadTestAgent(t, client, "alice@example.com")

	created, err := service.Create(context.Background(), models.CreateLeadRequest{
		Name: "Acme Corp", Source: "website", SalesAgentID: agent.ID, TimeToClose: 30,
	})
	require.NoError(t, err)

	t.Run("Success - 200 with success response", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/leads/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Delete(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SuccessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Error - 404 on already deleted lead", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/leads/1", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", created.ID))

		require.NoError(t, handler.Delete(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
