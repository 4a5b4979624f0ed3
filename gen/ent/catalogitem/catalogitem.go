// Code generated by ent, DO NOT EDIT.

package catalogitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the catalogitem type in the database.
	Label = "catalog_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSecondaryCode holds the string denoting the secondary_code field in the database.
	FieldSecondaryCode = "secondary_code"
	// FieldBaseUnit holds the string denoting the base_unit field in the database.
	FieldBaseUnit = "base_unit"
	// FieldConversionFactor holds the string denoting the conversion_factor field in the database.
	FieldConversionFactor = "conversion_factor"
	// FieldAltUnit holds the string denoting the alt_unit field in the database.
	FieldAltUnit = "alt_unit"
	// FieldTaxCode holds the string denoting the tax_code field in the database.
	FieldTaxCode = "tax_code"
	// Table holds the table name of the catalogitem in the database.
	Table = "catalog_items"
)

// Columns holds all SQL columns for catalogitem fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldDescription,
	FieldSecondaryCode,
	FieldBaseUnit,
	FieldConversionFactor,
	FieldAltUnit,
	FieldTaxCode,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// SecondaryCodeValidator is a validator for the "secondary_code" field. It is called by the builders before save.
	SecondaryCodeValidator func(string) error
	// BaseUnitValidator is a validator for the "base_unit" field. It is called by the builders before save.
	BaseUnitValidator func(string) error
	// AltUnitValidator is a validator for the "alt_unit" field. It is called by the builders before save.
	AltUnitValidator func(string) error
	// TaxCodeValidator is a validator for the "tax_code" field. It is called by the builders before save.
	TaxCodeValidator func(string) error
)

// OrderOption defines the ordering options for the CatalogItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySecondaryCode orders the results by the secondary_code field.
func BySecondaryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryCode, opts...).ToFunc()
}

// ByBaseUnit orders the results by the base_unit field.
func ByBaseUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseUnit, opts...).ToFunc()
}

// ByConversionFactor orders the results by the conversion_factor field.
func ByConversionFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionFactor, opts...).ToFunc()
}

// ByAltUnit orders the results by the alt_unit field.
func ByAltUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAltUnit, opts...).ToFunc()
}

// ByTaxCode orders the results by the tax_code field.
func ByTaxCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxCode, opts...).ToFunc()
}
