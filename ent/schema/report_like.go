package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ReportLike struct {
	ent.Schema
}

func (ReportLike) Mixin() []ent.Mixin { return []ent.Mixin{CreatedMixin{}} }

func (ReportLike) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
	}
}

func (ReportLike) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("likes").
			Field("report_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("likes").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (ReportLike) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "user_id").Unique(),
	}
}
