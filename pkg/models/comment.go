package models

import "time"

// CreateCommentRequest represents a request to add a comment to a lead
type CreateCommentRequest struct {
	AuthorID    int    `json:"author_id" validate:"required,gt=0"`
	CommentText string `json:"comment_text" validate:"required,min=1,max=5000"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID          int       `json:"id"`
	LeadID      int       `json:"lead_id"`
	AuthorID    int       `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}
