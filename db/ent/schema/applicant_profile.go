package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var reNationalID = regexp.MustCompile(`^[0-9]{7,9}$`)

var reNationalIDErr = errors.New("invalid national ID number")

type ApplicantProfile struct{ ent.Schema }

func (ApplicantProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applicant_profiles"},
	}
}

func (ApplicantProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("full_name").NotEmpty(),
		field.String("id_number").NotEmpty().Unique().
			Validate(func(s string) error {
				if reNationalID.MatchString(s) {
					return nil
				}
				return reNationalIDErr
			}),
		field.String("phone_number").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.Time("date_of_birth").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("county").NotEmpty(),
		field.String("sub_county").Optional().Nillable(),
		field.String("ward").Optional().Nillable(),
		field.String("village").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ApplicantProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", BursaryApplication.Type),
	}
}

func (ApplicantProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id_number").Unique(),
		index.Fields("county"),
	}
}
