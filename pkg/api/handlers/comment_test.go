package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/pkg/comments"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCommentFixtures(t *testing.T, client *ent.Client) (*ent.Lead, *ent.SalesAgent) {
	ctx := context.Background()

	agent, err := client.SalesAgent.
		Create().
		SetName("Alice Agent").
		SetEmail("alice@example.com").
		Save(ctx)
	require.NoError(t, err)

	l, err := client.Lead.
		Create().
		SetName("Acme Corp").
		SetSource("website").
		SetSalesAgentID(agent.ID).
		SetTimeToClose(30).
		Save(ctx)
	require.NoError(t, err)

	return l, agent
}

func TestCommentHandlerCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	handler := NewCommentHandler(comments.NewService(client), sharedMetrics())
	l, agent := seedCommentFixtures(t, client)

	t.Run("Success - 201 with created comment", func(t *testing.T) {
		body := fmt.Sprintf(`{"author_id":%d,"comment_text":"Called, left a voicemail"}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/1/comments", body)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", l.ID))

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, l.ID, resp.LeadID)
		assert.Equal(t, agent.Name, resp.AuthorName)
		assert.Equal(t, "Called, left a voicemail", resp.CommentText)
	})

	t.Run("Error - 400 on missing comment text", func(t *testing.T) {
		body := fmt.Sprintf(`{"author_id":%d}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/1/comments", body)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", l.ID))

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - 400 on comment text over 5000 characters", func(t *testing.T) {
		body := fmt.Sprintf(`{"author_id":%d,"comment_text":"%s"}`, agent.ID, strings.Repeat("x", 5001))
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/1/comments", body)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", l.ID))

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		assert.Contains(t, resp.Message, "5000")
	})

	t.Run("Error - 404 on unknown lead", func(t *testing.T) {
		body := fmt.Sprintf(`{"author_id":%d,"comment_text":"Nobody home"}`, agent.ID)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/99999/comments", body)
		c.SetParamNames("id")
		c.SetParamValues("99999")

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - 404 on unknown author", func(t *testing.T) {
		body := `{"author_id":99999,"comment_text":"Ghost writer"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/1/comments", body)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", l.ID))

		require.NoError(t, handler.Create(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCommentHandlerListByLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	e := echo.New()
	service := comments.NewService(client)
	handler := NewCommentHandler(service, sharedMetrics())
	l, agent := seedCommentFixtures(t, client)

	_, err := service.Create(context.Background(), l.ID, models.CreateCommentRequest{
		AuthorID:    agent.ID,
		CommentText: "First touch",
	})
	require.NoError(t, err)

	t.Run("Success - 200 with comments", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/1/comments", "")
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprintf("%d", l.ID))

		require.NoError(t, handler.ListByLead(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []models.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "First touch", resp[0].CommentText)
	})

	t.Run("Error - 404 on unknown lead", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/99999/comments", "")
		c.SetParamNames("id")
		c.SetParamValues("99999")

		require.NoError(t, handler.ListByLead(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
