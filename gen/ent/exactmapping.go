// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
)

// ExactMapping is the model entity for the ExactMapping schema.
type ExactMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// InvoiceDescription holds the value of the "invoice_description" field.
	InvoiceDescription string `json:"invoice_description,omitempty"`
	// InvoiceSupplier holds the value of the "invoice_supplier" field.
	InvoiceSupplier string `json:"invoice_supplier,omitempty"`
	// CatalogCode holds the value of the "catalog_code" field.
	CatalogCode string `json:"catalog_code,omitempty"`
	// CatalogDescription holds the value of the "catalog_description" field.
	CatalogDescription string `json:"catalog_description,omitempty"`
	// CatalogSecondaryCode holds the value of the "catalog_secondary_code" field.
	CatalogSecondaryCode string `json:"catalog_secondary_code,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExactMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exactmapping.FieldID:
			values[i] = new(sql.NullInt64)
		case exactmapping.FieldInvoiceDescription, exactmapping.FieldInvoiceSupplier, exactmapping.FieldCatalogCode, exactmapping.FieldCatalogDescription, exactmapping.FieldCatalogSecondaryCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExactMapping fields.
func (_m *ExactMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exactmapping.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exactmapping.FieldInvoiceDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_description", values[i])
			} else if value.Valid {
				_m.InvoiceDescription = value.String
			}
		case exactmapping.FieldInvoiceSupplier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_supplier", values[i])
			} else if value.Valid {
				_m.InvoiceSupplier = value.String
			}
		case exactmapping.FieldCatalogCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_code", values[i])
			} else if value.Valid {
				_m.CatalogCode = value.String
			}
		case exactmapping.FieldCatalogDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_description", values[i])
			} else if value.Valid {
				_m.CatalogDescription = value.String
			}
		case exactmapping.FieldCatalogSecondaryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_secondary_code", values[i])
			} else if value.Valid {
				_m.CatalogSecondaryCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExactMapping.
// This includes values selected through modifiers, order, etc.
func (_m *ExactMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExactMapping.
// Note that you need to call ExactMapping.Unwrap() before calling this method if this ExactMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExactMapping) Update() *ExactMappingUpdateOne {
	return NewExactMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExactMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExactMapping) Unwrap() *ExactMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExactMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExactMapping) String() string {
	var builder strings.Builder
	builder.WriteString("ExactMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("invoice_description=")
	builder.WriteString(_m.InvoiceDescription)
	builder.WriteString(", ")
	builder.WriteString("invoice_supplier=")
	builder.WriteString(_m.InvoiceSupplier)
	builder.WriteString(", ")
	builder.WriteString("catalog_code=")
	builder.WriteString(_m.CatalogCode)
	builder.WriteString(", ")
	builder.WriteString("catalog_description=")
	builder.WriteString(_m.CatalogDescription)
	builder.WriteString(", ")
	builder.WriteString("catalog_secondary_code=")
	builder.WriteString(_m.CatalogSecondaryCode)
	builder.WriteByte(')')
	return builder.String()
}

// ExactMappings is a parsable slice of ExactMapping.
type ExactMappings []*ExactMapping
