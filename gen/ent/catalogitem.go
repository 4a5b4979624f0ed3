// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
)

// CatalogItem is the model entity for the CatalogItem schema.
type CatalogItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SecondaryCode holds the value of the "secondary_code" field.
	SecondaryCode string `json:"secondary_code,omitempty"`
	// BaseUnit holds the value of the "base_unit" field.
	BaseUnit string `json:"base_unit,omitempty"`
	// ConversionFactor holds the value of the "conversion_factor" field.
	ConversionFactor *float64 `json:"conversion_factor,omitempty"`
	// AltUnit holds the value of the "alt_unit" field.
	AltUnit string `json:"alt_unit,omitempty"`
	// TaxCode holds the value of the "tax_code" field.
	TaxCode      string `json:"tax_code,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogitem.FieldConversionFactor:
			values[i] = new(sql.NullFloat64)
		case catalogitem.FieldID:
			values[i] = new(sql.NullInt64)
		case catalogitem.FieldCode, catalogitem.FieldDescription, catalogitem.FieldSecondaryCode, catalogitem.FieldBaseUnit, catalogitem.FieldAltUnit, catalogitem.FieldTaxCode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogItem fields.
func (_m *CatalogItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case catalogitem.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case catalogitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case catalogitem.FieldSecondaryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_code", values[i])
			} else if value.Valid {
				_m.SecondaryCode = value.String
			}
		case catalogitem.FieldBaseUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_unit", values[i])
			} else if value.Valid {
				_m.BaseUnit = value.String
			}
		case catalogitem.FieldConversionFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field conversion_factor", values[i])
			} else if value.Valid {
				_m.ConversionFactor = new(float64)
				*_m.ConversionFactor = value.Float64
			}
		case catalogitem.FieldAltUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alt_unit", values[i])
			} else if value.Valid {
				_m.AltUnit = value.String
			}
		case catalogitem.FieldTaxCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_code", values[i])
			} else if value.Valid {
				_m.TaxCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogItem.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CatalogItem.
// Note that you need to call CatalogItem.Unwrap() before calling this method if this CatalogItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogItem) Update() *CatalogItemUpdateOne {
	return NewCatalogItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogItem) Unwrap() *CatalogItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogItem) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("secondary_code=")
	builder.WriteString(_m.SecondaryCode)
	builder.WriteString(", ")
	builder.WriteString("base_unit=")
	builder.WriteString(_m.BaseUnit)
	builder.WriteString(", ")
	if v := _m.ConversionFactor; v != nil {
		builder.WriteString("conversion_factor=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("alt_unit=")
	builder.WriteString(_m.AltUnit)
	builder.WriteString(", ")
	builder.WriteString("tax_code=")
	builder.WriteString(_m.TaxCode)
	builder.WriteByte(')')
	return builder.String()
}

// CatalogItems is a parsable slice of CatalogItem.
type CatalogItems []*CatalogItem
