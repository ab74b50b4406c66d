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

type BursaryApplication struct{ ent.Schema }

func (BursaryApplication) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bursary_applications"},
	}
}

func (BursaryApplication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("application_number").NotEmpty().Unique().Immutable(),
		field.String("student_name").NotEmpty(),
		field.String("institution_name").NotEmpty(),
		field.String("education_level").Optional().Nillable(),
		field.Float("annual_family_income").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tuition_fee").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("amount_requested").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("number_of_siblings").Default(0).Min(0),
		field.Int("siblings_in_school").Default(0).Min(0),
		field.Bool("is_orphan").Default(false),
		field.Bool("has_disability").Default(false),
		field.Bool("is_single_parent").Default(false),
		field.Bool("previous_bursary_recipient").Default(false),
		field.String("reason_for_application").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ApplicationStatuses...)),
		field.Bool("is_verified").Default(false),
		field.String("verified_by").Optional().Nillable(),
		field.Time("verified_at").Optional().Nillable(),
		field.Bool("is_flagged").Default(false),
		field.String("flag_reason").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("reviewer_comments").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("submitted_at").Default(time.Now).Immutable(),
		field.Time("reviewed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BursaryApplication) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", ApplicantProfile.Type).
			Ref("applications").
			Field("profile_id").
			Required().
			Unique(),
		edge.To("documents", Document.Type),
		edge.To("status_logs", ApplicationStatusLog.Type),
	}
}

func (BursaryApplication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "submitted_at"),
		index.Fields("status"),
		index.Fields("application_number").Unique(),
	}
}
