package models

import "time"

// CreateTagRequest represents a request to create a new tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
