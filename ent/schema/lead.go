package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Lead name (business or contact)"),
		field.Enum("source").
			Values("website", "referral", "cold_call", "advertisement", "email", "other").
			Comment("Where the lead came from"),
		field.Int("sales_agent_id").
			Positive().
			Comment("ID of the sales agent this lead is assigned to"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "proposal_sent", "closed").
			Default("new").
			Comment("Lead lifecycle status"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form labels attached to the lead"),
		field.Int("time_to_close").
			Positive().
			Comment("Estimated days to close the deal"),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("medium").
			Comment("Sales priority"),
		field.Time("closed_at").
			Optional().
			Nillable().
			Comment("When the lead was closed; nil while the lead is open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sales_agent", SalesAgent.Type).
			Ref("leads").
			Field("sales_agent_id").
			Unique().
			Required().
			Comment("Sales agent responsible for this lead"),

		edge.To("comments", Comment.Type).
			Comment("Comments attached to this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Primary listing filters
		index.Fields("status"),
		index.Fields("sales_agent_id", "status"),
		index.Fields("source"),
		index.Fields("priority"),

		// Weekly report scans
		index.Fields("status", "closed_at"),

		// Temporal
		index.Fields("created_at"),
	}
}
