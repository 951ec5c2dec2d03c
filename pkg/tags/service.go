package tags

import (
	"context"
	"fmt"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/tag"
	"github.com/avillega/leadtrail/pkg/models"
)

// Service handles tag operations.
type Service struct {
	client *ent.Client
}

// NewService creates a new tag service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
	}
}

// Create creates a new tag with a unique name.
func (s *Service) Create(ctx context.Context, req models.CreateTagRequest) (*models.TagResponse, error) {
	t, err := s.client.Tag.
		Create().
		SetName(req.Name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tag already exists")
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &models.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}, nil
}

// List returns all tags ordered by name.
func (s *Service) List(ctx context.Context) ([]*models.TagResponse, error) {
	rows, err := s.client.Tag.
		Query().
		Order(ent.Asc(tag.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	responses := make([]*models.TagResponse, len(rows))
	for i, t := range rows {
		responses[i] = &models.TagResponse{
			ID:        t.ID,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
		}
	}

	return responses, nil
}
