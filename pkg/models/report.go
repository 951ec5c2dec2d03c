package models

import "time"

// LastWeekReportResponse lists leads closed during the trailing seven days
type LastWeekReportResponse struct {
	From  time.Time      `json:"from"`
	To    time.Time      `json:"to"`
	Total int            `json:"total"`
	Leads []LeadResponse `json:"leads"`
}

// PipelineReportResponse counts leads still open in the pipeline
type PipelineReportResponse struct {
	TotalLeadsInPipeline int            `json:"total_leads_in_pipeline"`
	ByStatus             map[string]int `json:"by_status"`
}

// AgentClosedCount holds closed-lead counts for a single agent
type AgentClosedCount struct {
	SalesAgentID   int    `json:"sales_agent_id"`
	SalesAgentName string `json:"sales_agent_name"`
	ClosedCount    int    `json:"closed_count"`
}

// ClosedByAgentReportResponse groups closed leads by their sales agent
type ClosedByAgentReportResponse struct {
	Data []AgentClosedCount `json:"data"`
}
