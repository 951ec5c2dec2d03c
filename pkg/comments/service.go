package comments

import (
	"context"
	"fmt"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/comment"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/pkg/models"
)

// Service handles comment operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new comment service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
	}
}

// Create adds a comment to a lead on behalf of a sales agent.
func (s *Service) Create(ctx context.Context, leadID int, req models.CreateCommentRequest) (*models.CommentResponse, error) {
	leadExists, err := s.client.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !leadExists {
		return nil, fmt.Errorf("lead not found")
	}

	author, err := s.client.SalesAgent.Get(ctx, req.AuthorID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("sales agent not found")
		}
		return nil, fmt.Errorf("failed to load author: %w", err)
	}

	c, err := s.client.Comment.
		Create().
		SetLeadID(leadID).
		SetAuthorID(req.AuthorID).
		SetCommentText(req.CommentText).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &models.CommentResponse{
		ID:          c.ID,
		LeadID:      c.LeadID,
		AuthorID:    c.AuthorID,
		AuthorName:  author.Name,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}, nil
}

// ListByLead retrieves all comments for a lead, newest first, with the
// author's name resolved.
func (s *Service) ListByLead(ctx context.Context, leadID int) ([]*models.CommentResponse, error) {
	leadExists, err := s.client.Lead.Query().Where(lead.ID(leadID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead: %w", err)
	}
	if !leadExists {
		return nil, fmt.Errorf("lead not found")
	}

	rows, err := s.client.Comment.
		Query().
		Where(comment.LeadID(leadID)).
		WithAuthor().
		Order(ent.Desc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]*models.CommentResponse, len(rows))
	for i, c := range rows {
		responses[i] = &models.CommentResponse{
			ID:          c.ID,
			LeadID:      c.LeadID,
			AuthorID:    c.AuthorID,
			AuthorName:  c.Edges.Author.Name,
			CommentText: c.CommentText,
			CreatedAt:   c.CreatedAt,
		}
	}

	return responses, nil
}
