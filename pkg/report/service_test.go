package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/enttest"
	"github.com/avillega/leadtrail/ent/lead"
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

func createClosedLead(t *testing.T, client *ent.Client, agentID int, name string, closedAt time.Time) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetName(name).
		SetSource("website").
		SetSalesAgentID(agentID).
		SetTimeToClose(30).
		SetStatus(lead.StatusClosed).
		SetClosedAt(closedAt).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func createOpenLead(t *testing.T, client *ent.Client, agentID int, name string, status lead.Status) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetName(name).
		SetSource("referral").
		SetSalesAgentID(agentID).
		SetTimeToClose(30).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestLastWeekReport(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")

	t.Run("No closed leads yields empty report", func(t *testing.T) {
		got, err := service.LastWeek(ctx)

		require.NoError(t, err)
		assert.Zero(t, got.Total)
		assert.Empty(t, got.Leads)
		assert.True(t, got.From.Before(got.To))
	})

	t.Run("Includes only leads closed in the trailing week", func(t *testing.T) {
		createClosedLead(t, client, agent.ID, "Recent", time.Now().Add(-24*time.Hour))
		createClosedLead(t, client, agent.ID, "Yesterday", time.Now().Add(-48*time.Hour))
		createClosedLead(t, client, agent.ID, "Ancient", time.Now().AddDate(0, 0, -30))
		createOpenLead(t, client, agent.ID, "Still Open", lead.StatusContacted)

		got, err := service.LastWeek(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		require.Len(t, got.Leads, 2)
		// Newest close first
		assert.Equal(t, "Recent", got.Leads[0].Name)
		assert.Equal(t, "Yesterday", got.Leads[1].Name)
		assert.Equal(t, agent.Name, got.Leads[0].SalesAgentName)
	})
}

func TestPipelineReport(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	agent := createTestAgent(t, client, "Alice Agent", "alice@example.com")

	t.Run("Empty pipeline", func(t *testing.T) {
		got, err := service.Pipeline(ctx)

		require.NoError(t, err)
		assert.Zero(t, got.TotalLeadsInPipeline)
		assert.Empty(t, got.ByStatus)
	})

	t.Run("Counts open leads by status, closed excluded", func(t *testing.T) {
		createOpenLead(t, client, agent.ID, "N1", lead.StatusNew)
		createOpenLead(t, client, agent.ID, "N2", lead.StatusNew)
		createOpenLead(t, client, agent.ID, "C1", lead.StatusContacted)
		createOpenLead(t, client, agent.ID, "Q1", lead.StatusQualified)
		createClosedLead(t, client, agent.ID, "Done", time.Now())

		got, err := service.Pipeline(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, got.TotalLeadsInPipeline)
		assert.Equal(t, 2, got.ByStatus["new"])
		assert.Equal(t, 1, got.ByStatus["contacted"])
		assert.Equal(t, 1, got.ByStatus["qualified"])
		assert.NotContains(t, got.ByStatus, "closed")
	})
}

func TestClosedByAgentReport(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	alice := createTestAgent(t, client, "Alice Agent", "alice@example.com")
	bob := createTestAgent(t, client, "Bob Agent", "bob@example.com")

	t.Run("No closed leads yields empty data", func(t *testing.T) {
		got, err := service.ClosedByAgent(ctx)

		require.NoError(t, err)
		assert.Empty(t, got.Data)
	})

	t.Run("Groups closed leads per agent with names", func(t *testing.T) {
		createClosedLead(t, client, alice.ID, "A1", time.Now())
		createClosedLead(t, client, alice.ID, "A2", time.Now())
		createClosedLead(t, client, bob.ID, "B1", time.Now())
		createOpenLead(t, client, bob.ID, "B2", lead.StatusNew)

		got, err := service.ClosedByAgent(ctx)

		require.NoError(t, err)
		require.Len(t, got.Data, 2)

		counts := make(map[string]int, len(got.Data))
		for _, row := range got.Data {
			counts[row.SalesAgentName] = row.ClosedCount
		}
		assert.Equal(t, 2, counts["Alice Agent"])
		assert.Equal(t, 1, counts["Bob Agent"])
	})
}
