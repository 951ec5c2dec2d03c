package comments

import (
	"context"
	"fmt"
	"testing"
	"time"

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

func seedLeadAndAgent(t *testing.T, client *ent.Client) (*ent.Lead, *ent.SalesAgent) {
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

func TestCreateComment(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	l, agent := seedLeadAndAgent(t, client)

	t.Run("Success - Create comment", func(t *testing.T) {
		created, err := service.Create(ctx, l.ID, models.CreateCommentRequest{
			AuthorID:    agent.ID,
			CommentText: "Called, left a voicemail",
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, l.ID, created.LeadID)
		assert.Equal(t, agent.ID, created.AuthorID)
		assert.Equal(t, agent.Name, created.AuthorName)
		assert.Equal(t, "Called, left a voicemail", created.CommentText)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Error - Lead not found", func(t *testing.T) {
		created, err := service.Create(ctx, 99999, models.CreateCommentRequest{
			AuthorID:    agent.ID,
			CommentText: "Nobody home",
		})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "lead not found")
	})

	t.Run("Error - Author not found", func(t *testing.T) {
		created, err := service.Create(ctx, l.ID, models.CreateCommentRequest{
			AuthorID:    99999,
			CommentText: "Ghost writer",
		})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "sales agent not found")
	})
}

func TestListCommentsByLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	l, agent := seedLeadAndAgent(t, client)

	t.Run("Empty lead returns empty list", func(t *testing.T) {
		comments, err := service.ListByLead(ctx, l.ID)

		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("Returns comments newest first with author names", func(t *testing.T) {
		// Explicit timestamps so the ordering is deterministic
		base := time.Now().Add(-time.Hour)
		for i, text := range []string{"first touch", "second touch", "third touch"} {
			_, err := client.Comment.
				Create().
				SetLeadID(l.ID).
				SetAuthorID(agent.ID).
				SetCommentText(text).
				SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
				Save(ctx)
			require.NoError(t, err)
		}

		comments, err := service.ListByLead(ctx, l.ID)

		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "third touch", comments[0].CommentText)
		assert.Equal(t, "first touch", comments[2].CommentText)
		for _, c := range comments {
			assert.Equal(t, agent.Name, c.AuthorName)
		}
	})

	t.Run("Error - Lead not found", func(t *testing.T) {
		comments, err := service.ListByLead(ctx, 99999)

		assert.Error(t, err)
		assert.Nil(t, comments)
		assert.Contains(t, err.Error(), "lead not found")
	})
}
