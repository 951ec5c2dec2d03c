package agents

import (
	"context"
	"fmt"
	"testing"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/enttest"
	"github.com/avillega/leadtrail/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	return client, func() { client.Close() }
}

func TestCreateAgent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Success - Create agent", func(t *testing.T) {
		agent, err := service.Create(ctx, models.CreateAgentRequest{
			Name:  "Alice Agent",
			Email: "alice@example.com",
		})

		require.NoError(t, err)
		assert.NotZero(t, agent.ID)
		assert.Equal(t, "Alice Agent", agent.Name)
		assert.Equal(t, "alice@example.com", agent.Email)
		assert.Empty(t, agent.Phone)
	})

	t.Run("Success - Phone is normalized to E.164", func(t *testing.T) {
		agent, err := service.Create(ctx, models.CreateAgentRequest{
			Name:  "Bob Agent",
			Email: "bob@example.com",
			Phone: "(202) 555-0143",
		})

		require.NoError(t, err)
		assert.Equal(t, "+12025550143", agent.Phone)
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		agent, err := service.Create(ctx, models.CreateAgentRequest{
			Name:  "Alice Clone",
			Email: "alice@example.com",
		})

		assert.Error(t, err)
		assert.Nil(t, agent)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Error - Invalid phone number", func(t *testing.T) {
		agent, err := service.Create(ctx, models.CreateAgentRequest{
			Name:  "Carol Agent",
			Email: "carol@example.com",
			Phone: "not-a-phone",
		})

		assert.Error(t, err)
		assert.Nil(t, agent)
		assert.Contains(t, err.Error(), "invalid phone number")
	})
}

func TestListAgents(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Empty database returns empty list", func(t *testing.T) {
		agents, err := service.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, agents)
	})

	t.Run("Returns agents ordered by creation", func(t *testing.T) {
		for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
			_, err := service.Create(ctx, models.CreateAgentRequest{
				Name:  fmt.Sprintf("Agent %d", i+1),
				Email: email,
			})
			require.NoError(t, err)
		}

		agents, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, agents, 3)
		assert.Equal(t, "a@example.com", agents[0].Email)
		assert.Equal(t, "c@example.com", agents[2].Email)
	})
}

func TestGetAgentByID(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.Create(ctx, models.CreateAgentRequest{
		Name:  "Alice Agent",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	t.Run("Success - Get existing agent", func(t *testing.T) {
		agent, err := service.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, agent.ID)
		assert.Equal(t, "Alice Agent", agent.Name)
	})

	t.Run("Error - Agent not found", func(t *testing.T) {
		agent, err := service.GetByID(ctx, 99999)

		assert.Error(t, err)
		assert.Nil(t, agent)
		assert.Contains(t, err.Error(), "agent not found")
	})
}

func TestDeleteAgent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.Create(ctx, models.CreateAgentRequest{
		Name:  "Alice Agent",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	t.Run("Error - Agent still has assigned leads", func(t *testing.T) {
		l, err := client.Lead.
			Create().
			SetName("Acme Corp").
			SetSource("website").
			SetSalesAgentID(created.ID).
			SetTimeToClose(30).
			Save(ctx)
		require.NoError(t, err)

		err = service.Delete(ctx, created.ID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "assigned leads")

		require.NoError(t, client.Lead.DeleteOneID(l.ID).Exec(ctx))
	})

	t.Run("Success - Delete agent without leads", func(t *testing.T) {
		err := service.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = service.GetByID(ctx, created.ID)
		assert.Error(t, err)
	})

	t.Run("Error - Agent not found", func(t *testing.T) {
		err := service.Delete(ctx, 99999)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "agent not found")
	})
}
