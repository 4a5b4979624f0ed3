package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CatalogItem maps to the reference catalog table the matcher runs against.
// Rows are replaced wholesale by the upstream sync; the service only reads.
type CatalogItem struct {
	ent.Schema
}

func (CatalogItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "catalog_items"},
	}
}

func (CatalogItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			Unique().
			MaxLen(25),
		field.String("description").
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("secondary_code").
			Optional().
			MaxLen(25),
		field.String("base_unit").
			Optional().
			MaxLen(25),
		field.Float("conversion_factor").
			Optional().
			Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,6)"}),
		field.String("alt_unit").
			Optional().
			MaxLen(25),
		field.String("tax_code").
			Optional().
			MaxLen(10),
	}
}

func (CatalogItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("description"),
	}
}
