package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ReportView is one recorded opening of a report detail page.
type ReportView struct {
	ent.Schema
}

func (ReportView) Mixin() []ent.Mixin { return []ent.Mixin{CreatedMixin{}} }

func (ReportView) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (ReportView) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("views").
			Field("report_id").
			Unique().
			Required(),
		edge.From("viewer", User.Type).
			Ref("views").
			Field("user_id").
			Unique(),
	}
}

func (ReportView) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
