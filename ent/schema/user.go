package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("email").MaxLen(255).Unique(),
		// Empty for accounts that only sign in with Google.
		field.String("password_hash").MaxLen(255).Default("").Sensitive(),
		field.String("username").MaxLen(50).Default(""),
		field.String("display_name").MaxLen(100).Default(""),
		field.Time("confirmed_at").Optional().Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("views", ReportView.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("likes", ReportLike.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("confirmed_at", "created_at"),
	}
}
