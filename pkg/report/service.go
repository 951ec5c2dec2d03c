package report

import (
	"context"
	"fmt"
	"time"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/ent/salesagent"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/models"
)

// Service computes sales reports from the lead table.
type Service struct {
	client *ent.Client
}

// NewService creates a new report service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
	}
}

// LastWeek returns the leads closed during the trailing seven days.
func (s *Service) LastWeek(ctx context.Context) (*models.LastWeekReportResponse, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -7)

	rows, err := s.client.Lead.
		Query().
		Where(
			lead.StatusEQ(lead.StatusClosed),
			lead.ClosedAtGTE(from),
			lead.ClosedAtLTE(to),
		).
		WithSalesAgent().
		Order(ent.Desc(lead.FieldClosedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query closed leads: %w", err)
	}

	leadsClosed := make([]models.LeadResponse, len(rows))
	for i, l := range rows {
		leadsClosed[i] = leads.ToLeadResponse(l)
	}

	return &models.LastWeekReportResponse{
		From:  from,
		To:    to,
		Total: len(leadsClosed),
		Leads: leadsClosed,
	}, nil
}

// Pipeline counts the leads that are still open, broken down by status.
func (s *Service) Pipeline(ctx context.Context) (*models.PipelineReportResponse, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Lead.
		Query().
		Where(lead.StatusNEQ(lead.StatusClosed)).
		GroupBy(lead.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count pipeline leads: %w", err)
	}

	byStatus := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		byStatus[row.Status] = row.Count
		total += row.Count
	}

	return &models.PipelineReportResponse{
		TotalLeadsInPipeline: total,
		ByStatus:             byStatus,
	}, nil
}

// ClosedByAgent groups all closed leads by the agent who owns them.
func (s *Service) ClosedByAgent(ctx context.Context) (*models.ClosedByAgentReportResponse, error) {
	var rows []struct {
		SalesAgentID int `json:"sales_agent_id"`
		Count        int `json:"count"`
	}
	err := s.client.Lead.
		Query().
		Where(lead.StatusEQ(lead.StatusClosed)).
		GroupBy(lead.FieldSalesAgentID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to group closed leads: %w", err)
	}

	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.SalesAgentID
	}

	agentRows, err := s.client.SalesAgent.
		Query().
		Where(salesagent.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	names := make(map[int]string, len(agentRows))
	for _, agent := range agentRows {
		names[agent.ID] = agent.Name
	}

	data := make([]models.AgentClosedCount, len(rows))
	for i, row := range rows {
		data[i] = models.AgentClosedCount{
			SalesAgentID:   row.SalesAgentID,
			SalesAgentName: names[row.SalesAgentID],
			ClosedCount:    row.Count,
		}
	}

	return &models.ClosedByAgentReportResponse{Data: data}, nil
}
