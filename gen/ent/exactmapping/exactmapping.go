// Code generated by ent, DO NOT EDIT.

package exactmapping

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exactmapping type in the database.
	Label = "exact_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInvoiceDescription holds the string denoting the invoice_description field in the database.
	FieldInvoiceDescription = "invoice_description"
	// FieldInvoiceSupplier holds the string denoting the invoice_supplier field in the database.
	FieldInvoiceSupplier = "invoice_supplier"
	// FieldCatalogCode holds the string denoting the catalog_code field in the database.
	FieldCatalogCode = "catalog_code"
	// FieldCatalogDescription holds the string denoting the catalog_description field in the database.
	FieldCatalogDescription = "catalog_description"
	// FieldCatalogSecondaryCode holds the string denoting the catalog_secondary_code field in the database.
	FieldCatalogSecondaryCode = "catalog_secondary_code"
	// Table holds the table name of the exactmapping in the database.
	Table = "exact_mappings"
)

// Columns holds all SQL columns for exactmapping fields.
var Columns = []string{
	FieldID,
	FieldInvoiceDescription,
	FieldInvoiceSupplier,
	FieldCatalogCode,
	FieldCatalogDescription,
	FieldCatalogSecondaryCode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// InvoiceDescriptionValidator is a validator for the "invoice_description" field. It is called by the builders before save.
	InvoiceDescriptionValidator func(string) error
	// InvoiceSupplierValidator is a validator for the "invoice_supplier" field. It is called by the builders before save.
	InvoiceSupplierValidator func(string) error
	// CatalogCodeValidator is a validator for the "catalog_code" field. It is called by the builders before save.
	CatalogCodeValidator func(string) error
	// CatalogSecondaryCodeValidator is a validator for the "catalog_secondary_code" field. It is called by the builders before save.
	CatalogSecondaryCodeValidator func(string) error
)

// OrderOption defines the ordering options for the ExactMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvoiceDescription orders the results by the invoice_description field.
func ByInvoiceDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDescription, opts...).ToFunc()
}

// ByInvoiceSupplier orders the results by the invoice_supplier field.
func ByInvoiceSupplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceSupplier, opts...).ToFunc()
}

// ByCatalogCode orders the results by the catalog_code field.
func ByCatalogCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogCode, opts...).ToFunc()
}

// ByCatalogDescription orders the results by the catalog_description field.
func ByCatalogDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogDescription, opts...).ToFunc()
}

// ByCatalogSecondaryCode orders the results by the catalog_secondary_code field.
func ByCatalogSecondaryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogSecondaryCode, opts...).ToFunc()
}
