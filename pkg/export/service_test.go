package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/enttest"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	return client, func() { client.Close() }
}

func seedLeads(t *testing.T, client *ent.Client, count int) {
	ctx := context.Background()

	agent, err := client.SalesAgent.
		Create().
		SetName("Alice Agent").
		SetEmail("alice@example.com").
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < count; i++ {
		_, err := client.Lead.
			Create().
			SetName(fmt.Sprintf("Lead %d", i+1)).
			SetSource("website").
			SetSalesAgentID(agent.ID).
			SetTimeToClose(30).
			SetTags([]string{"export"}).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestGenerateCSV(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedLeads(t, client, 3)
	service := NewService(leads.NewService(client), 100)

	file, err := service.Generate(ctx, FormatCSV, models.LeadListRequest{})

	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Name, "leads-"))
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))
	assert.Equal(t, 3, file.LeadCount)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 rows
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "Alice Agent", records[1][3])
	assert.Equal(t, "export", records[1][5])
}

func TestGenerateExcel(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedLeads(t, client, 2)
	service := NewService(leads.NewService(client), 100)

	file, err := service.Generate(ctx, FormatExcel, models.LeadListRequest{})

	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
	assert.Equal(t, 2, file.LeadCount)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 rows
	assert.Equal(t, exportHeaders, rows[0])
}

func TestGenerateInvalidFormat(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(leads.NewService(client), 100)

	file, err := service.Generate(context.Background(), Format("pdf"), models.LeadListRequest{})

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestGenerateRespectsMaxRows(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedLeads(t, client, 5)
	service := NewService(leads.NewService(client), 2)

	file, err := service.Generate(ctx, FormatCSV, models.LeadListRequest{})

	require.NoError(t, err)
	assert.Equal(t, 2, file.LeadCount)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3) // header + 2 rows
}
