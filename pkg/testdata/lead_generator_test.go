package testdata

import (
	"context"
	"fmt"
	"testing"

	"github.com/avillega/leadtrail/ent/enttest"
	"github.com/avillega/leadtrail/ent/lead"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	defer client.Close()

	ctx := context.Background()

	agentIDs, err := Generate(ctx, client, GeneratorConfig{
		Agents:      3,
		Leads:       20,
		ClosedRatio: 0.5,
		Seed:        42,
	})
	require.NoError(t, err)
	assert.Len(t, agentIDs, 3)

	total, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, total)

	closed, err := client.Lead.Query().Where(lead.StatusEQ(lead.StatusClosed)).All(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, closed)
	for _, l := range closed {
		assert.NotNil(t, l.ClosedAt, "closed leads must carry a close timestamp")
	}

	open, err := client.Lead.Query().Where(lead.StatusNEQ(lead.StatusClosed)).All(ctx)
	require.NoError(t, err)
	for _, l := range open {
		assert.Nil(t, l.ClosedAt)
		assert.Contains(t, agentIDs, l.SalesAgentID)
	}
}
