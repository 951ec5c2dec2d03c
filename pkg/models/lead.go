package models

import "time"

// CreateLeadRequest represents a request to create a new lead
type CreateLeadRequest struct {
	Name         string   `json:"name" validate:"required,min=1"`
	Source       string   `json:"source" validate:"required,oneof=website referral cold_call advertisement email other"`
	SalesAgentID int      `json:"sales_agent_id" validate:"required,gt=0"`
	Status       string   `json:"status" validate:"omitempty,oneof=new contacted qualified proposal_sent closed"`
	Tags         []string `json:"tags" validate:"omitempty,dive,min=1"`
	TimeToClose  int      `json:"time_to_close" validate:"required,gt=0"`
	Priority     string   `json:"priority" validate:"omitempty,oneof=high medium low"`
}

// UpdateLeadRequest represents a partial update to an existing lead
type UpdateLeadRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Source       *string   `json:"source,omitempty" validate:"omitempty,oneof=website referral cold_call advertisement email other"`
	SalesAgentID *int      `json:"sales_agent_id,omitempty" validate:"omitempty,gt=0"`
	Status       *string   `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified proposal_sent closed"`
	Tags         *[]string `json:"tags,omitempty" validate:"omitempty,dive,min=1"`
	TimeToClose  *int      `json:"time_to_close,omitempty" validate:"omitempty,gt=0"`
	Priority     *string   `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
}

// LeadListRequest represents filter and sort parameters for listing leads
type LeadListRequest struct {
	SalesAgent int    `query:"sales_agent" validate:"omitempty,gt=0"`
	Status     string `query:"status" validate:"omitempty,oneof=new contacted qualified proposal_sent closed"`
	Source     string `query:"source" validate:"omitempty,oneof=website referral cold_call advertisement email other"`
	Priority   string `query:"priority" validate:"omitempty,oneof=high medium low"`
	Tag        string `query:"tag"`
	SortBy     string `query:"sort_by" validate:"omitempty,oneof=created_at time_to_close priority"`
	Order      string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Source         string     `json:"source"`
	SalesAgentID   int        `json:"sales_agent_id"`
	SalesAgentName string     `json:"sales_agent_name,omitempty"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags,omitempty"`
	TimeToClose    int        `json:"time_to_close"`
	Priority       string     `json:"priority"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LeadListResponse represents a list of leads with the filters that produced it
type LeadListResponse struct {
	Data    []LeadResponse `json:"data"`
	Total   int            `json:"total"`
	Filters AppliedFilters `json:"filters"`
}

// AppliedFilters shows what filters were applied to the listing
type AppliedFilters struct {
	SalesAgent int    `json:"sales_agent,omitempty"`
	Status     string `json:"status,omitempty"`
	Source     string `json:"source,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Tag        string `json:"tag,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`
	Order      string `json:"order,omitempty"`
}
