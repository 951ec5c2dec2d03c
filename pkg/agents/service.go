package agents

import (
	"context"
	"fmt"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/ent/salesagent"
	"github.com/avillega/leadtrail/pkg/models"
	"github.com/avillega/leadtrail/pkg/phone"
)

// Service handles sales agent operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new sales agent service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
	}
}

// Create creates a new sales agent. Email must be unique; the phone
// number, when present, is normalized to E.164 before storage.
func (s *Service) Create(ctx context.Context, req models.CreateAgentRequest) (*models.AgentResponse, error) {
	taken, err := s.client.SalesAgent.
		Query().
		Where(salesagent.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("agent with this email already exists")
	}

	create := s.client.SalesAgent.
		Create().
		SetName(req.Name).
		SetEmail(req.Email)

	if req.Phone != "" {
		normalized, err := phone.Normalize(req.Phone, "")
		if err != nil {
			return nil, fmt.Errorf("invalid phone number")
		}
		create = create.SetPhone(normalized)
	}

	agent, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent with this email already exists")
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return toAgentResponse(agent), nil
}

// List returns all sales agents ordered by creation date.
func (s *Service) List(ctx context.Context) ([]*models.AgentResponse, error) {
	rows, err := s.client.SalesAgent.
		Query().
		Order(ent.Asc(salesagent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	responses := make([]*models.AgentResponse, len(rows))
	for i, agent := range rows {
		responses[i] = toAgentResponse(agent)
	}

	return responses, nil
}

// GetByID retrieves a single sales agent by ID.
func (s *Service) GetByID(ctx context.Context, id int) (*models.AgentResponse, error) {
	agent, err := s.client.SalesAgent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent not found")
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return toAgentResponse(agent), nil
}

// Delete removes a sales agent. Agents still owning leads cannot be
// deleted; leads must be reassigned first.
func (s *Service) Delete(ctx context.Context, id int) error {
	exists, err := s.client.SalesAgent.Query().Where(salesagent.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check agent: %w", err)
	}
	if !exists {
		return fmt.Errorf("agent not found")
	}

	assigned, err := s.client.Lead.Query().Where(lead.SalesAgentID(id)).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count assigned leads: %w", err)
	}
	if assigned > 0 {
		return fmt.Errorf("agent still has assigned leads")
	}

	if err := s.client.SalesAgent.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	return nil
}

func toAgentResponse(a *ent.SalesAgent) *models.AgentResponse {
	return &models.AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
