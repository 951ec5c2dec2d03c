package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead this comment belongs to"),
		field.Int("author_id").
			Positive().
			Comment("ID of the sales agent who wrote this comment"),
		field.Text("comment_text").
			NotEmpty().
			MaxLen(5000).
			Comment("Comment body (max 5,000 characters)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Comment.
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("comments").
			Field("lead_id").
			Unique().
			Required().
			Comment("Lead this comment belongs to"),
		edge.From("author", SalesAgent.Type).
			Ref("comments").
			Field("author_id").
			Unique().
			Required().
			Comment("Sales agent who wrote this comment"),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		// Most common query: all comments for a lead, newest first
		index.Fields("lead_id", "created_at"),
		index.Fields("author_id", "created_at"),
	}
}
