package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SalesAgent holds the schema definition for the SalesAgent entity.
type SalesAgent struct {
	ent.Schema
}

// Fields of the SalesAgent.
func (SalesAgent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Agent full name"),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Agent email address"),
		field.String("phone").
			Optional().
			Comment("Agent phone number, stored in E.164 format"),
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

// Edges of the SalesAgent.
func (SalesAgent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("leads", Lead.Type).
			Comment("Leads assigned to this agent"),
		edge.To("comments", Comment.Type).
			Comment("Comments written by this agent"),
	}
}

// Indexes of the SalesAgent.
func (SalesAgent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("created_at"),
	}
}
