package leads

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/comment"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/pkg/models"
)

// Service handles lead business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new lead service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// Create creates a new lead assigned to an existing sales agent.
func (s *Service) Create(ctx context.Context, req models.CreateLeadRequest) (*models.LeadResponse, error) {
	// The assigned agent must exist
	agent, err := s.db.SalesAgent.Get(ctx, req.SalesAgentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("sales agent not found")
		}
		return nil, fmt.Errorf("failed to load sales agent: %w", err)
	}

	create := s.db.Lead.
		Create().
		SetName(req.Name).
		SetSource(lead.Source(req.Source)).
		SetSalesAgentID(req.SalesAgentID).
		SetTimeToClose(req.TimeToClose)

	if req.Status != "" {
		create = create.SetStatus(lead.Status(req.Status))
		if req.Status == string(lead.StatusClosed) {
			create = create.SetClosedAt(time.Now())
		}
	}
	if req.Priority != "" {
		create = create.SetPriority(lead.Priority(req.Priority))
	}
	if len(req.Tags) > 0 {
		create = create.SetTags(req.Tags)
	}

	l, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	resp := ToLeadResponse(l)
	resp.SalesAgentName = agent.Name
	return &resp, nil
}

// List returns leads matching the given filters, in the requested order.
func (s *Service) List(ctx context.Context, req models.LeadListRequest) (*models.LeadListResponse, error) {
	return s.list(ctx, req, 0)
}

// ListLimited behaves like List but caps the number of rows fetched
// from the database.
func (s *Service) ListLimited(ctx context.Context, req models.LeadListRequest, limit int) (*models.LeadListResponse, error) {
	return s.list(ctx, req, limit)
}

func (s *Service) list(ctx context.Context, req models.LeadListRequest, limit int) (*models.LeadListResponse, error) {
	query := s.db.Lead.Query().WithSalesAgent()

	// Apply filters
	if req.SalesAgent > 0 {
		query = query.Where(lead.SalesAgentID(req.SalesAgent))
	}
	if req.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(req.Status)))
	}
	if req.Source != "" {
		query = query.Where(lead.SourceEQ(lead.Source(req.Source)))
	}
	if req.Priority != "" {
		query = query.Where(lead.PriorityEQ(lead.Priority(req.Priority)))
	}
	if req.Tag != "" {
		tag := req.Tag
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(lead.FieldTags, tag))
		})
	}

	// Apply ordering; default is newest first
	query = applyOrder(query, req.SortBy, req.Order)

	if limit > 0 {
		query = query.Limit(limit)
	}

	leadRows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	responses := make([]models.LeadResponse, len(leadRows))
	for i, l := range leadRows {
		responses[i] = ToLeadResponse(l)
	}

	return &models.LeadListResponse{
		Data:  responses,
		Total: len(responses),
		Filters: models.AppliedFilters{
			SalesAgent: req.SalesAgent,
			Status:     req.Status,
			Source:     req.Source,
			Priority:   req.Priority,
			Tag:        req.Tag,
			SortBy:     req.SortBy,
			Order:      req.Order,
		},
	}, nil
}

// GetByID retrieves a single lead by ID.
func (s *Service) GetByID(ctx context.Context, id int) (*models.LeadResponse, error) {
	l, err := s.db.Lead.
		Query().
		Where(lead.ID(id)).
		WithSalesAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	resp := ToLeadResponse(l)
	return &resp, nil
}

// Update applies a partial update to an existing lead. Moving the lead
// into the closed status stamps closed_at; moving it back out clears it.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateLeadRequest) (*models.LeadResponse, error) {
	existing, err := s.db.Lead.Query().Where(lead.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	// Reassignment requires the new agent to exist
	if req.SalesAgentID != nil {
		if _, err := s.db.SalesAgent.Get(ctx, *req.SalesAgentID); err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("sales agent not found")
			}
			return nil, fmt.Errorf("failed to load sales agent: %w", err)
		}
	}

	update := s.db.Lead.UpdateOneID(id)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Source != nil {
		update = update.SetSource(lead.Source(*req.Source))
	}
	if req.SalesAgentID != nil {
		update = update.SetSalesAgentID(*req.SalesAgentID)
	}
	if req.Tags != nil {
		update = update.SetTags(*req.Tags)
	}
	if req.TimeToClose != nil {
		update = update.SetTimeToClose(*req.TimeToClose)
	}
	if req.Priority != nil {
		update = update.SetPriority(lead.Priority(*req.Priority))
	}
	if req.Status != nil {
		update = update.SetStatus(lead.Status(*req.Status))
		switch {
		case *req.Status == string(lead.StatusClosed) && existing.Status != lead.StatusClosed:
			update = update.SetClosedAt(time.Now())
		case *req.Status != string(lead.StatusClosed) && existing.Status == lead.StatusClosed:
			update = update.ClearClosedAt()
		}
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a lead together with its comments.
func (s *Service) Delete(ctx context.Context, id int) error {
	exists, err := s.db.Lead.Query().Where(lead.ID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check lead: %w", err)
	}
	if !exists {
		return fmt.Errorf("lead not found")
	}

	if _, err := s.db.Comment.Delete().Where(comment.LeadID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete lead comments: %w", err)
	}

	if err := s.db.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}

// applyOrder translates the allow-listed sort parameters into an ent order.
// Priority sorts by sales urgency (high before low), not lexically.
func applyOrder(query *ent.LeadQuery, sortBy, order string) *ent.LeadQuery {
	desc := order == "desc"

	switch sortBy {
	case "time_to_close":
		if desc {
			return query.Order(ent.Desc(lead.FieldTimeToClose))
		}
		return query.Order(ent.Asc(lead.FieldTimeToClose))
	case "priority":
		dir := ""
		if desc {
			dir = " DESC"
		}
		return query.Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr(fmt.Sprintf(
				"CASE %s WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END%s",
				sel.C(lead.FieldPriority), dir)))
		})
	case "created_at":
		if desc {
			return query.Order(ent.Desc(lead.FieldCreatedAt))
		}
		return query.Order(ent.Asc(lead.FieldCreatedAt))
	default:
		return query.Order(ent.Desc(lead.FieldCreatedAt))
	}
}

// ToLeadResponse converts an ent lead to a response model
func ToLeadResponse(l *ent.Lead) models.LeadResponse {
	resp := models.LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Source:       string(l.Source),
		SalesAgentID: l.SalesAgentID,
		Status:       string(l.Status),
		Tags:         l.Tags,
		TimeToClose:  l.TimeToClose,
		Priority:     string(l.Priority),
		ClosedAt:     l.ClosedAt,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.Edges.SalesAgent != nil {
		resp.SalesAgentName = l.Edges.SalesAgent.Name
	}
	return resp
}
