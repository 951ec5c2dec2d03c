package leads

import (
	"context"
	"fmt"
	"testing"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/enttest"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	return client, func() { client.Close() }
}

func createTestAgent(t *testing.T, client *ent.Client, name, email string) *ent.SalesAgent {
	agent, err := client.SalesAgent.
		Create().
		SetName(name).
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func TestCreateLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")

	t.Run("Success - Create lead with defaults", func(t *testing.T) {
		req := models.CreateLeadRequest{
			Name:         "Acme Corp",
			Source:       "website",
			SalesAgentID: agent.ID,
			TimeToClose:  30,
		}

		created, err := service.Create(ctx, req)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Acme Corp", created.Name)
		assert.Equal(t, "website", created.Source)
		assert.Equal(t, agent.ID, created.SalesAgentID)
		assert.Equal(t, agent.Name, created.SalesAgentName)
		assert.Equal(t, "new", created.Status)
		assert.Equal(t, "medium", created.Priority)
		assert.Equal(t, 30, created.TimeToClose)
		assert.Nil(t, created.ClosedAt)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Success - Create lead with tags and priority", func(t *testing.T) {
		req := models.CreateLeadRequest{
			Name:         "Beta LLC",
			Source:       "referral",
			SalesAgentID: agent.ID,
			TimeToClose:  14,
			Priority:     "high",
			Tags:         []string{"hot", "enterprise"},
		}

		created, err := service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "high", created.Priority)
		assert.Equal(t, []string{"hot", "enterprise"}, created.Tags)
	})

	t.Run("Success - Creating in closed status stamps closed_at", func(t *testing.T) {
		req := models.CreateLeadRequest{
			Name:         "Gamma Inc",
			Source:       "email",
			SalesAgentID: agent.ID,
			TimeToClose:  7,
			Status:       "closed",
		}

		created, err := service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "closed", created.Status)
		require.NotNil(t, created.ClosedAt)
		assert.False(t, created.ClosedAt.IsZero())
	})

	t.Run("Error - Unknown sales agent", func(t *testing.T) {
		req := models.CreateLeadRequest{
			Name:         "Nobody's Lead",
			Source:       "website",
			SalesAgentID: 99999,
			TimeToClose:  30,
		}

		created, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "sales agent not found")
	})
}

func TestListLeads(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	alice := createTestAgent(t, client, "Alice Agent", "alice@example.com")
	bob := createTestAgent(t, client, "Bob Agent", "bob@example.com")

	seed := []models.CreateLeadRequest{
		{Name: "L1", Source: "website", SalesAgentID: alice.ID, TimeToClose: 10, Priority: "low", Tags: []string{"hot"}},
		{Name: "L2", Source: "referral", SalesAgentID: alice.ID, TimeToClose: 5, Priority: "high", Status: "contacted"},
		{Name: "L3", Source: "cold_call", SalesAgentID: bob.ID, TimeToClose: 60, Priority: "medium", Tags: []string{"hot", "enterprise"}},
		{Name: "L4", Source: "website", SalesAgentID: bob.ID, TimeToClose: 20, Priority: "high", Status: "closed"},
	}
	for _, req := range seed {
		_, err := service.Create(ctx, req)
		require.NoError(t, err)
	}

	t.Run("No filters returns everything", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{})

		require.NoError(t, err)
		assert.Equal(t, 4, result.Total)
		assert.Len(t, result.Data, 4)
	})

	t.Run("Filter by status", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{Status: "contacted"})

		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "L2", result.Data[0].Name)
		assert.Equal(t, "contacted", result.Filters.Status)
	})

	t.Run("Filter by source", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{Source: "website"})

		require.NoError(t, err)
		assert.Len(t, result.Data, 2)
	})

	t.Run("Filter by sales agent", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{SalesAgent: bob.ID})

		require.NoError(t, err)
		assert.Len(t, result.Data, 2)
		for _, l := range result.Data {
			assert.Equal(t, bob.ID, l.SalesAgentID)
			assert.Equal(t, bob.Name, l.SalesAgentName)
		}
	})

	t.Run("Filter by tag returns only matching leads", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{Tag: "hot"})

		require.NoError(t, err)
		require.Len(t, result.Data, 2)
		for _, l := range result.Data {
			assert.Contains(t, l.Tags, "hot")
		}
	})

	t.Run("Filter by priority and agent combined", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{Priority: "high", SalesAgent: alice.ID})

		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "L2", result.Data[0].Name)
	})

	t.Run("Sort by time_to_close ascending", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{SortBy: "time_to_close", Order: "asc"})

		require.NoError(t, err)
		require.Len(t, result.Data, 4)
		assert.Equal(t, 5, result.Data[0].TimeToClose)
		assert.Equal(t, 60, result.Data[3].TimeToClose)
	})

	t.Run("ListLimited caps the rows fetched", func(t *testing.T) {
		result, err := service.ListLimited(ctx, models.LeadListRequest{}, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Len(t, result.Data, 2)
	})

	t.Run("Sort by priority puts high first", func(t *testing.T) {
		result, err := service.List(ctx, models.LeadListRequest{SortBy: "priority"})

		require.NoError(t, err)
		require.Len(t, result.Data, 4)
		assert.Equal(t, "high", result.Data[0].Priority)
		assert.Equal(t, "high", result.Data[1].Priority)
		assert.Equal(t, "low", result.Data[3].Priority)
	})
}

func TestGetLeadByID(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")
	created, err := service.Create(ctx, models.CreateLeadRequest{
		Name:         "Acme Corp",
		Source:       "website",
		SalesAgentID: agent.ID,
		TimeToClose:  30,
	})
	require.NoError(t, err)

	t.Run("Success - Get existing lead", func(t *testing.T) {
		got, err := service.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Acme Corp", got.Name)
		assert.Equal(t, agent.Name, got.SalesAgentName)
	})

	t.Run("Error - Lead not found", func(t *testing.T) {
		got, err := service.GetByID(ctx, 99999)

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "lead not found")
	})
}

func TestUpdateLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")
	other := createTestAgent(t, client, "Bob Agent", "bob@example.com")

	created, err := service.Create(ctx, models.CreateLeadRequest{
		Name:         "Acme Corp",
		Source:       "website",
		SalesAgentID: agent.ID,
		TimeToClose:  30,
	})
	require.NoError(t, err)

	t.Run("Success - Update simple fields", func(t *testing.T) {
		name := "Acme Corporation"
		priority := "high"
		updated, err := service.Update(ctx, created.ID, models.UpdateLeadRequest{
			Name:     &name,
			Priority: &priority,
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Corporation", updated.Name)
		assert.Equal(t, "high", updated.Priority)
	})

	t.Run("Success - Reassign to another agent", func(t *testing.T) {
		updated, err := service.Update(ctx, created.ID, models.UpdateLeadRequest{
			SalesAgentID: &other.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, other.ID, updated.SalesAgentID)
		assert.Equal(t, other.Name, updated.SalesAgentName)
	})

	t.Run("Success - Closing stamps closed_at", func(t *testing.T) {
		status := "closed"
		updated, err := service.Update(ctx, created.ID, models.UpdateLeadRequest{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, "closed", updated.Status)
		require.NotNil(t, updated.ClosedAt)
	})

	t.Run("Success - Reopening clears closed_at", func(t *testing.T) {
		status := "contacted"
		updated, err := service.Update(ctx, created.ID, models.UpdateLeadRequest{
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, "contacted", updated.Status)
		assert.Nil(t, updated.ClosedAt)
	})

	t.Run("Error - Lead not found", func(t *testing.T) {
		name := "Ghost"
		updated, err := service.Update(ctx, 99999, models.UpdateLeadRequest{Name: &name})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "lead not found")
	})

	t.Run("Error - Reassign to unknown agent", func(t *testing.T) {
		missing := 99999
		updated, err := service.Update(ctx, created.ID, models.UpdateLeadRequest{
			SalesAgentID: &missing,
		})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "sales agent not found")
	})
}

func TestDeleteLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")
	created, err := service.Create(ctx, models.CreateLeadRequest{
		Name:         "Acme Corp",
		Source:       "website",
		SalesAgentID: agent.ID,
		TimeToClose:  30,
	})
	require.NoError(t, err)

	// Attach a comment so the cascade is observable
	_, err = client.Comment.
		Create().
		SetLeadID(created.ID).
		SetAuthorID(agent.ID).
		SetCommentText("Called, waiting for reply").
		Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Deletes lead and its comments", func(t *testing.T) {
		err := service.Delete(ctx, created.ID)
		require.NoError(t, err)

		exists, err := client.Lead.Query().Where(lead.ID(created.ID)).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)

		remaining, err := client.Comment.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("Error - Lead not found", func(t *testing.T) {
		err := service.Delete(ctx, 99999)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lead not found")
	})
}
