package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ExtractionLog audits every vision-model invocation with its token usage,
// written on success and on failure.
type ExtractionLog struct {
	ent.Schema
}

func (ExtractionLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_logs"},
	}
}

func (ExtractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("company_id").
			NotEmpty().
			MaxLen(255),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("licence_id").
			Optional().
			MaxLen(255),
		field.Int("requests").
			Default(0),
		field.Int("request_tokens").
			Default(0),
		field.Int("response_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.String("status").
			NotEmpty().
			MaxLen(50),
		field.String("remarks").
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bytes("payload").
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
