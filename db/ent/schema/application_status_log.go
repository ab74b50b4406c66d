package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/db/ent/schema/utils"
)

// ApplicationStatusLog is append-only. Rows are never updated or deleted;
// the full log is the audit trail of an application's review.
type ApplicationStatusLog struct{ ent.Schema }

func (ApplicationStatusLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application_status_logs"},
	}
}

func (ApplicationStatusLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("application_id", uuid.UUID{}).Immutable(),
		field.String("old_status").Optional().Immutable().
			Validate(utils.EnumValidator(append([]string{""}, constants.ApplicationStatuses...)...)),
		field.String("new_status").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.ApplicationStatuses...)),
		field.String("changed_by").Optional().Nillable().Immutable(),
		field.String("comments").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("changed_at").Default(time.Now).Immutable(),
	}
}

func (ApplicationStatusLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", BursaryApplication.Type).
			Ref("status_logs").
			Field("application_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (ApplicationStatusLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "changed_at"),
	}
}
