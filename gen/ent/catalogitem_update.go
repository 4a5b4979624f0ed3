// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// CatalogItemUpdate is the builder for updating CatalogItem entities.
type CatalogItemUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogItemMutation
}

// Where appends a list predicates to the CatalogItemUpdate builder.
func (_u *CatalogItemUpdate) Where(ps ...predicate.CatalogItem) *CatalogItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *CatalogItemUpdate) SetCode(v string) *CatalogItemUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableCode(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CatalogItemUpdate) SetDescription(v string) *CatalogItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableDescription(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CatalogItemUpdate) ClearDescription() *CatalogItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSecondaryCode sets the "secondary_code" field.
func (_u *CatalogItemUpdate) SetSecondaryCode(v string) *CatalogItemUpdate {
	_u.mutation.SetSecondaryCode(v)
	return _u
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableSecondaryCode(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetSecondaryCode(*v)
	}
	return _u
}

// ClearSecondaryCode clears the value of the "secondary_code" field.
func (_u *CatalogItemUpdate) ClearSecondaryCode() *CatalogItemUpdate {
	_u.mutation.ClearSecondaryCode()
	return _u
}

// SetBaseUnit sets the "base_unit" field.
func (_u *CatalogItemUpdate) SetBaseUnit(v string) *CatalogItemUpdate {
	_u.mutation.SetBaseUnit(v)
	return _u
}

// SetNillableBaseUnit sets the "base_unit" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableBaseUnit(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetBaseUnit(*v)
	}
	return _u
}

// ClearBaseUnit clears the value of the "base_unit" field.
func (_u *CatalogItemUpdate) ClearBaseUnit() *CatalogItemUpdate {
	_u.mutation.ClearBaseUnit()
	return _u
}

// SetConversionFactor sets the "conversion_factor" field.
func (_u *CatalogItemUpdate) SetConversionFactor(v float64) *CatalogItemUpdate {
	_u.mutation.ResetConversionFactor()
	_u.mutation.SetConversionFactor(v)
	return _u
}

// SetNillableConversionFactor sets the "conversion_factor" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableConversionFactor(v *float64) *CatalogItemUpdate {
	if v != nil {
		_u.SetConversionFactor(*v)
	}
	return _u
}

// AddConversionFactor adds value to the "conversion_factor" field.
func (_u *CatalogItemUpdate) AddConversionFactor(v float64) *CatalogItemUpdate {
	_u.mutation.AddConversionFactor(v)
	return _u
}

// ClearConversionFactor clears the value of the "conversion_factor" field.
func (_u *CatalogItemUpdate) ClearConversionFactor() *CatalogItemUpdate {
	_u.mutation.ClearConversionFactor()
	return _u
}

// SetAltUnit sets the "alt_unit" field.
func (_u *CatalogItemUpdate) SetAltUnit(v string) *CatalogItemUpdate {
	_u.mutation.SetAltUnit(v)
	return _u
}

// SetNillableAltUnit sets the "alt_unit" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableAltUnit(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetAltUnit(*v)
	}
	return _u
}

// ClearAltUnit clears the value of the "alt_unit" field.
func (_u *CatalogItemUpdate) ClearAltUnit() *CatalogItemUpdate {
	_u.mutation.ClearAltUnit()
	return _u
}

// SetTaxCode sets the "tax_code" field.
func (_u *CatalogItemUpdate) SetTaxCode(v string) *CatalogItemUpdate {
	_u.mutation.SetTaxCode(v)
	return _u
}

// SetNillableTaxCode sets the "tax_code" field if the given value is not nil.
func (_u *CatalogItemUpdate) SetNillableTaxCode(v *string) *CatalogItemUpdate {
	if v != nil {
		_u.SetTaxCode(*v)
	}
	return _u
}

// ClearTaxCode clears the value of the "tax_code" field.
func (_u *CatalogItemUpdate) ClearTaxCode() *CatalogItemUpdate {
	_u.mutation.ClearTaxCode()
	return _u
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_u *CatalogItemUpdate) Mutation() *CatalogItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogItemUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := catalogitem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecondaryCode(); ok {
		if err := catalogitem.SecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "secondary_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.secondary_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseUnit(); ok {
		if err := catalogitem.BaseUnitValidator(v); err != nil {
			return &ValidationError{Name: "base_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.base_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltUnit(); ok {
		if err := catalogitem.AltUnitValidator(v); err != nil {
			return &ValidationError{Name: "alt_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.alt_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxCode(); ok {
		if err := catalogitem.TaxCodeValidator(v); err != nil {
			return &ValidationError{Name: "tax_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.tax_code": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogitem.Table, catalogitem.Columns, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(catalogitem.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(catalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryCode(); ok {
		_spec.SetField(catalogitem.FieldSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.SecondaryCodeCleared() {
		_spec.ClearField(catalogitem.FieldSecondaryCode, field.TypeString)
	}
	if value, ok := _u.mutation.BaseUnit(); ok {
		_spec.SetField(catalogitem.FieldBaseUnit, field.TypeString, value)
	}
	if _u.mutation.BaseUnitCleared() {
		_spec.ClearField(catalogitem.FieldBaseUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ConversionFactor(); ok {
		_spec.SetField(catalogitem.FieldConversionFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConversionFactor(); ok {
		_spec.AddField(catalogitem.FieldConversionFactor, field.TypeFloat64, value)
	}
	if _u.mutation.ConversionFactorCleared() {
		_spec.ClearField(catalogitem.FieldConversionFactor, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AltUnit(); ok {
		_spec.SetField(catalogitem.FieldAltUnit, field.TypeString, value)
	}
	if _u.mutation.AltUnitCleared() {
		_spec.ClearField(catalogitem.FieldAltUnit, field.TypeString)
	}
	if value, ok := _u.mutation.TaxCode(); ok {
		_spec.SetField(catalogitem.FieldTaxCode, field.TypeString, value)
	}
	if _u.mutation.TaxCodeCleared() {
		_spec.ClearField(catalogitem.FieldTaxCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogItemUpdateOne is the builder for updating a single CatalogItem entity.
type CatalogItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogItemMutation
}

// SetCode sets the "code" field.
func (_u *CatalogItemUpdateOne) SetCode(v string) *CatalogItemUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableCode(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CatalogItemUpdateOne) SetDescription(v string) *CatalogItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableDescription(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CatalogItemUpdateOne) ClearDescription() *CatalogItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSecondaryCode sets the "secondary_code" field.
func (_u *CatalogItemUpdateOne) SetSecondaryCode(v string) *CatalogItemUpdateOne {
	_u.mutation.SetSecondaryCode(v)
	return _u
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableSecondaryCode(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetSecondaryCode(*v)
	}
	return _u
}

// ClearSecondaryCode clears the value of the "secondary_code" field.
func (_u *CatalogItemUpdateOne) ClearSecondaryCode() *CatalogItemUpdateOne {
	_u.mutation.ClearSecondaryCode()
	return _u
}

// SetBaseUnit sets the "base_unit" field.
func (_u *CatalogItemUpdateOne) SetBaseUnit(v string) *CatalogItemUpdateOne {
	_u.mutation.SetBaseUnit(v)
	return _u
}

// SetNillableBaseUnit sets the "base_unit" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableBaseUnit(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetBaseUnit(*v)
	}
	return _u
}

// ClearBaseUnit clears the value of the "base_unit" field.
func (_u *CatalogItemUpdateOne) ClearBaseUnit() *CatalogItemUpdateOne {
	_u.mutation.ClearBaseUnit()
	return _u
}

// SetConversionFactor sets the "conversion_factor" field.
func (_u *CatalogItemUpdateOne) SetConversionFactor(v float64) *CatalogItemUpdateOne {
	_u.mutation.ResetConversionFactor()
	_u.mutation.SetConversionFactor(v)
	return _u
}

// SetNillableConversionFactor sets the "conversion_factor" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableConversionFactor(v *float64) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetConversionFactor(*v)
	}
	return _u
}

// AddConversionFactor adds value to the "conversion_factor" field.
func (_u *CatalogItemUpdateOne) AddConversionFactor(v float64) *CatalogItemUpdateOne {
	_u.mutation.AddConversionFactor(v)
	return _u
}

// ClearConversionFactor clears the value of the "conversion_factor" field.
func (_u *CatalogItemUpdateOne) ClearConversionFactor() *CatalogItemUpdateOne {
	_u.mutation.ClearConversionFactor()
	return _u
}

// SetAltUnit sets the "alt_unit" field.
func (_u *CatalogItemUpdateOne) SetAltUnit(v string) *CatalogItemUpdateOne {
	_u.mutation.SetAltUnit(v)
	return _u
}

// SetNillableAltUnit sets the "alt_unit" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableAltUnit(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetAltUnit(*v)
	}
	return _u
}

// ClearAltUnit clears the value of the "alt_unit" field.
func (_u *CatalogItemUpdateOne) ClearAltUnit() *CatalogItemUpdateOne {
	_u.mutation.ClearAltUnit()
	return _u
}

// SetTaxCode sets the "tax_code" field.
func (_u *CatalogItemUpdateOne) SetTaxCode(v string) *CatalogItemUpdateOne {
	_u.mutation.SetTaxCode(v)
	return _u
}

// SetNillableTaxCode sets the "tax_code" field if the given value is not nil.
func (_u *CatalogItemUpdateOne) SetNillableTaxCode(v *string) *CatalogItemUpdateOne {
	if v != nil {
		_u.SetTaxCode(*v)
	}
	return _u
}

// ClearTaxCode clears the value of the "tax_code" field.
func (_u *CatalogItemUpdateOne) ClearTaxCode() *CatalogItemUpdateOne {
	_u.mutation.ClearTaxCode()
	return _u
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_u *CatalogItemUpdateOne) Mutation() *CatalogItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the CatalogItemUpdate builder.
func (_u *CatalogItemUpdateOne) Where(ps ...predicate.CatalogItem) *CatalogItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogItemUpdateOne) Select(field string, fields ...string) *CatalogItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogItem entity.
func (_u *CatalogItemUpdateOne) Save(ctx context.Context) (*CatalogItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogItemUpdateOne) SaveX(ctx context.Context) *CatalogItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogItemUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := catalogitem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecondaryCode(); ok {
		if err := catalogitem.SecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "secondary_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.secondary_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseUnit(); ok {
		if err := catalogitem.BaseUnitValidator(v); err != nil {
			return &ValidationError{Name: "base_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.base_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AltUnit(); ok {
		if err := catalogitem.AltUnitValidator(v); err != nil {
			return &ValidationError{Name: "alt_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.alt_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxCode(); ok {
		if err := catalogitem.TaxCodeValidator(v); err != nil {
			return &ValidationError{Name: "tax_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.tax_code": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogItemUpdateOne) sqlSave(ctx context.Context) (_node *CatalogItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogitem.Table, catalogitem.Columns, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogitem.FieldID)
		for _, f := range fields {
			if !catalogitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(catalogitem.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(catalogitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryCode(); ok {
		_spec.SetField(catalogitem.FieldSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.SecondaryCodeCleared() {
		_spec.ClearField(catalogitem.FieldSecondaryCode, field.TypeString)
	}
	if value, ok := _u.mutation.BaseUnit(); ok {
		_spec.SetField(catalogitem.FieldBaseUnit, field.TypeString, value)
	}
	if _u.mutation.BaseUnitCleared() {
		_spec.ClearField(catalogitem.FieldBaseUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ConversionFactor(); ok {
		_spec.SetField(catalogitem.FieldConversionFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConversionFactor(); ok {
		_spec.AddField(catalogitem.FieldConversionFactor, field.TypeFloat64, value)
	}
	if _u.mutation.ConversionFactorCleared() {
		_spec.ClearField(catalogitem.FieldConversionFactor, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AltUnit(); ok {
		_spec.SetField(catalogitem.FieldAltUnit, field.TypeString, value)
	}
	if _u.mutation.AltUnitCleared() {
		_spec.ClearField(catalogitem.FieldAltUnit, field.TypeString)
	}
	if value, ok := _u.mutation.TaxCode(); ok {
		_spec.SetField(catalogitem.FieldTaxCode, field.TypeString, value)
	}
	if _u.mutation.TaxCodeCleared() {
		_spec.ClearField(catalogitem.FieldTaxCode, field.TypeString)
	}
	_node = &CatalogItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
