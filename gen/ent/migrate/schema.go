// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogItemsColumns holds the columns for the "catalog_items" table.
	CatalogItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 25},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "secondary_code", Type: field.TypeString, Nullable: true, Size: 25},
		{Name: "base_unit", Type: field.TypeString, Nullable: true, Size: 25},
		{Name: "conversion_factor", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(18,6)"}},
		{Name: "alt_unit", Type: field.TypeString, Nullable: true, Size: 25},
		{Name: "tax_code", Type: field.TypeString, Nullable: true, Size: 10},
	}
	// CatalogItemsTable holds the schema information for the "catalog_items" table.
	CatalogItemsTable = &schema.Table{
		Name:       "catalog_items",
		Columns:    CatalogItemsColumns,
		PrimaryKey: []*schema.Column{CatalogItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "catalogitem_description",
				Unique:  false,
				Columns: []*schema.Column{CatalogItemsColumns[2]},
			},
		},
	}
	// ExactMappingsColumns holds the columns for the "exact_mappings" table.
	ExactMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "invoice_description", Type: field.TypeString, Size: 450},
		{Name: "invoice_supplier", Type: field.TypeString, Size: 75},
		{Name: "catalog_code", Type: field.TypeString, Size: 25},
		{Name: "catalog_description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "catalog_secondary_code", Type: field.TypeString, Nullable: true, Size: 25},
	}
	// ExactMappingsTable holds the schema information for the "exact_mappings" table.
	ExactMappingsTable = &schema.Table{
		Name:       "exact_mappings",
		Columns:    ExactMappingsColumns,
		PrimaryKey: []*schema.Column{ExactMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exactmapping_invoice_description_invoice_supplier",
				Unique:  true,
				Columns: []*schema.Column{ExactMappingsColumns[1], ExactMappingsColumns[2]},
			},
		},
	}
	// ExtractionLogsColumns holds the columns for the "extraction_logs" table.
	ExtractionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeString, Size: 255},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "licence_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "requests", Type: field.TypeInt, Default: 0},
		{Name: "request_tokens", Type: field.TypeInt, Default: 0},
		{Name: "response_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Size: 50},
		{Name: "remarks", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "payload", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractionLogsTable holds the schema information for the "extraction_logs" table.
	ExtractionLogsTable = &schema.Table{
		Name:       "extraction_logs",
		Columns:    ExtractionLogsColumns,
		PrimaryKey: []*schema.Column{ExtractionLogsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogItemsTable,
		ExactMappingsTable,
		ExtractionLogsTable,
	}
)

func init() {
	CatalogItemsTable.Annotation = &entsql.Annotation{
		Table: "catalog_items",
	}
	ExactMappingsTable.Annotation = &entsql.Annotation{
		Table: "exact_mappings",
	}
	ExtractionLogsTable.Annotation = &entsql.Annotation{
		Table: "extraction_logs",
	}
}
