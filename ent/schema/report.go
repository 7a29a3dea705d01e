package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.String("title").MaxLen(200).NotEmpty(),
		field.Text("description").NotEmpty(),

		field.Enum("category").
			Values("crime", "road", "infrastructure", "environment", "traffic", "security", "services", "other"),

		field.String("location").Default(""),
		field.Float("latitude").Optional().Nillable(),
		field.Float("longitude").Optional().Nillable(),
		field.String("region").Optional().Nillable(),

		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),

		field.Bool("is_anonymous").Default(true).Immutable(),
		// Always nil for anonymous reports.
		field.UUID("user_id", uuid.UUID{}).Optional().Nillable(),

		field.Enum("status").
			Values("pending", "verified", "resolved").
			Default("pending"),

		field.Strings("media").Optional(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("reports").
			Field("user_id").
			Unique(),

		edge.To("views", ReportView.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("likes", ReportLike.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
