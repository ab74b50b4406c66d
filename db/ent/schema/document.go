package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("application_id", uuid.UUID{}),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty().
			Validate(utils.EnumValidator(constants.AllowedExtensions...)),
		field.String("description").Optional().Nillable(),
		field.String("status").Default(string(constants.DocumentPending)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.Bool("is_verified").Default(false),
		field.Bool("is_flagged").Default(false),
		field.Float32("verification_confidence").Optional().Nillable(),
		field.JSON("verification_result", json.RawMessage{}).
			Optional(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", BursaryApplication.Type).
			Ref("documents").
			Field("application_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "document_type"),
	}
}
