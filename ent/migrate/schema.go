// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "comment_text", Type: field.TypeString, Size: 5000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "author_id", Type: field.TypeInt},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_leads_comments",
				Columns:    []*schema.Column{CommentsColumns[3]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "comments_sales_agents_comments",
				Columns:    []*schema.Column{CommentsColumns[4]},
				RefColumns: []*schema.Column{SalesAgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[3], CommentsColumns[2]},
			},
			{
				Name:    "comment_author_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[4], CommentsColumns[2]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"website", "referral", "cold_call", "advertisement", "email", "other"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "proposal_sent", "closed"}, Default: "new"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "time_to_close", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "medium"},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sales_agent_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_sales_agents_leads",
				Columns:    []*schema.Column{LeadsColumns[10]},
				RefColumns: []*schema.Column{SalesAgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[3]},
			},
			{
				Name:    "lead_sales_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[10], LeadsColumns[3]},
			},
			{
				Name:    "lead_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_priority",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_status_closed_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[3], LeadsColumns[7]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[8]},
			},
		},
	}
	// SalesAgentsColumns holds the columns for the "sales_agents" table.
	SalesAgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SalesAgentsTable holds the schema information for the "sales_agents" table.
	SalesAgentsTable = &schema.Table{
		Name:       "sales_agents",
		Columns:    SalesAgentsColumns,
		PrimaryKey: []*schema.Column{SalesAgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "salesagent_email",
				Unique:  true,
				Columns: []*schema.Column{SalesAgentsColumns[2]},
			},
			{
				Name:    "salesagent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SalesAgentsColumns[4]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_name",
				Unique:  true,
				Columns: []*schema.Column{TagsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommentsTable,
		LeadsTable,
		SalesAgentsTable,
		TagsTable,
	}
)

func init() {
	CommentsTable.ForeignKeys[0].RefTable = LeadsTable
	CommentsTable.ForeignKeys[1].RefTable = SalesAgentsTable
	LeadsTable.ForeignKeys[0].RefTable = SalesAgentsTable
}
