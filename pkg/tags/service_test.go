package tags

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

func TestCreateTag(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Success - Create tag", func(t *testing.T) {
		created, err := service.Create(ctx, models.CreateTagRequest{Name: "enterprise"})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "enterprise", created.Name)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Error - Duplicate name", func(t *testing.T) {
		created, err := service.Create(ctx, models.CreateTagRequest{Name: "enterprise"})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "tag already exists")
	})
}

func TestListTags(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Empty database returns empty list", func(t *testing.T) {
		tags, err := service.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("Returns tags sorted by name", func(t *testing.T) {
		for _, name := range []string{"warm", "enterprise", "hot"} {
			_, err := service.Create(ctx, models.CreateTagRequest{Name: name})
			require.NoError(t, err)
		}

		tags, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, "enterprise", tags[0].Name)
		assert.Equal(t, "hot", tags[1].Name)
		assert.Equal(t, "warm", tags[2].Name)
	})
}
