package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExactMapping is a confirmed (invoice description, supplier) → catalog code
// association. The reconciler only reads this table; rows are written when
// an operator confirms a suggestion.
type ExactMapping struct {
	ent.Schema
}

func (ExactMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exact_mappings"},
	}
}

func (ExactMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("invoice_description").
			NotEmpty().
			MaxLen(450),
		field.String("invoice_supplier").
			NotEmpty().
			MaxLen(75),
		field.String("catalog_code").
			NotEmpty().
			MaxLen(25),
		field.String("catalog_description").
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("catalog_secondary_code").
			Optional().
			MaxLen(25),
	}
}

func (ExactMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_description", "invoice_supplier").
			Unique(),
	}
}
