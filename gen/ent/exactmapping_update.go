// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// ExactMappingUpdate is the builder for updating ExactMapping entities.
type ExactMappingUpdate struct {
	config
	hooks    []Hook
	mutation *ExactMappingMutation
}

// Where appends a list predicates to the ExactMappingUpdate builder.
func (_u *ExactMappingUpdate) Where(ps ...predicate.ExactMapping) *ExactMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceDescription sets the "invoice_description" field.
func (_u *ExactMappingUpdate) SetInvoiceDescription(v string) *ExactMappingUpdate {
	_u.mutation.SetInvoiceDescription(v)
	return _u
}

// SetNillableInvoiceDescription sets the "invoice_description" field if the given value is not nil.
func (_u *ExactMappingUpdate) SetNillableInvoiceDescription(v *string) *ExactMappingUpdate {
	if v != nil {
		_u.SetInvoiceDescription(*v)
	}
	return _u
}

// SetInvoiceSupplier sets the "invoice_supplier" field.
func (_u *ExactMappingUpdate) SetInvoiceSupplier(v string) *ExactMappingUpdate {
	_u.mutation.SetInvoiceSupplier(v)
	return _u
}

// SetNillableInvoiceSupplier sets the "invoice_supplier" field if the given value is not nil.
func (_u *ExactMappingUpdate) SetNillableInvoiceSupplier(v *string) *ExactMappingUpdate {
	if v != nil {
		_u.SetInvoiceSupplier(*v)
	}
	return _u
}

// SetCatalogCode sets the "catalog_code" field.
func (_u *ExactMappingUpdate) SetCatalogCode(v string) *ExactMappingUpdate {
	_u.mutation.SetCatalogCode(v)
	return _u
}

// SetNillableCatalogCode sets the "catalog_code" field if the given value is not nil.
func (_u *ExactMappingUpdate) SetNillableCatalogCode(v *string) *ExactMappingUpdate {
	if v != nil {
		_u.SetCatalogCode(*v)
	}
	return _u
}

// SetCatalogDescription sets the "catalog_description" field.
func (_u *ExactMappingUpdate) SetCatalogDescription(v string) *ExactMappingUpdate {
	_u.mutation.SetCatalogDescription(v)
	return _u
}

// SetNillableCatalogDescription sets the "catalog_description" field if the given value is not nil.
func (_u *ExactMappingUpdate) SetNillableCatalogDescription(v *string) *ExactMappingUpdate {
	if v != nil {
		_u.SetCatalogDescription(*v)
	}
	return _u
}

// ClearCatalogDescription clears the value of the "catalog_description" field.
func (_u *ExactMappingUpdate) ClearCatalogDescription() *ExactMappingUpdate {
	_u.mutation.ClearCatalogDescription()
	return _u
}

// SetCatalogSecondaryCode sets the "catalog_secondary_code" field.
func (_u *ExactMappingUpdate) SetCatalogSecondaryCode(v string) *ExactMappingUpdate {
	_u.mutation.SetCatalogSecondaryCode(v)
	return _u
}

// SetNillableCatalogSecondaryCode sets the "catalog_secondary_code" field if the given value is not nil.
func (_u *ExactMappingUpdate) SetNillableCatalogSecondaryCode(v *string) *ExactMappingUpdate {
	if v != nil {
		_u.SetCatalogSecondaryCode(*v)
	}
	return _u
}

// ClearCatalogSecondaryCode clears the value of the "catalog_secondary_code" field.
func (_u *ExactMappingUpdate) ClearCatalogSecondaryCode() *ExactMappingUpdate {
	_u.mutation.ClearCatalogSecondaryCode()
	return _u
}

// Mutation returns the ExactMappingMutation object of the builder.
func (_u *ExactMappingUpdate) Mutation() *ExactMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExactMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExactMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExactMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExactMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExactMappingUpdate) check() error {
	if v, ok := _u.mutation.InvoiceDescription(); ok {
		if err := exactmapping.InvoiceDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "invoice_description", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceSupplier(); ok {
		if err := exactmapping.InvoiceSupplierValidator(v); err != nil {
			return &ValidationError{Name: "invoice_supplier", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_supplier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogCode(); ok {
		if err := exactmapping.CatalogCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogSecondaryCode(); ok {
		if err := exactmapping.CatalogSecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_secondary_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_secondary_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ExactMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exactmapping.Table, exactmapping.Columns, sqlgraph.NewFieldSpec(exactmapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceDescription(); ok {
		_spec.SetField(exactmapping.FieldInvoiceDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceSupplier(); ok {
		_spec.SetField(exactmapping.FieldInvoiceSupplier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogDescription(); ok {
		_spec.SetField(exactmapping.FieldCatalogDescription, field.TypeString, value)
	}
	if _u.mutation.CatalogDescriptionCleared() {
		_spec.ClearField(exactmapping.FieldCatalogDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogSecondaryCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.CatalogSecondaryCodeCleared() {
		_spec.ClearField(exactmapping.FieldCatalogSecondaryCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exactmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExactMappingUpdateOne is the builder for updating a single ExactMapping entity.
type ExactMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExactMappingMutation
}

// SetInvoiceDescription sets the "invoice_description" field.
func (_u *ExactMappingUpdateOne) SetInvoiceDescription(v string) *ExactMappingUpdateOne {
	_u.mutation.SetInvoiceDescription(v)
	return _u
}

// SetNillableInvoiceDescription sets the "invoice_description" field if the given value is not nil.
func (_u *ExactMappingUpdateOne) SetNillableInvoiceDescription(v *string) *ExactMappingUpdateOne {
	if v != nil {
		_u.SetInvoiceDescription(*v)
	}
	return _u
}

// SetInvoiceSupplier sets the "invoice_supplier" field.
func (_u *ExactMappingUpdateOne) SetInvoiceSupplier(v string) *ExactMappingUpdateOne {
	_u.mutation.SetInvoiceSupplier(v)
	return _u
}

// SetNillableInvoiceSupplier sets the "invoice_supplier" field if the given value is not nil.
func (_u *ExactMappingUpdateOne) SetNillableInvoiceSupplier(v *string) *ExactMappingUpdateOne {
	if v != nil {
		_u.SetInvoiceSupplier(*v)
	}
	return _u
}

// SetCatalogCode sets the "catalog_code" field.
func (_u *ExactMappingUpdateOne) SetCatalogCode(v string) *ExactMappingUpdateOne {
	_u.mutation.SetCatalogCode(v)
	return _u
}

// SetNillableCatalogCode sets the "catalog_code" field if the given value is not nil.
func (_u *ExactMappingUpdateOne) SetNillableCatalogCode(v *string) *ExactMappingUpdateOne {
	if v != nil {
		_u.SetCatalogCode(*v)
	}
	return _u
}

// SetCatalogDescription sets the "catalog_description" field.
func (_u *ExactMappingUpdateOne) SetCatalogDescription(v string) *ExactMappingUpdateOne {
	_u.mutation.SetCatalogDescription(v)
	return _u
}

// SetNillableCatalogDescription sets the "catalog_description" field if the given value is not nil.
func (_u *ExactMappingUpdateOne) SetNillableCatalogDescription(v *string) *ExactMappingUpdateOne {
	if v != nil {
		_u.SetCatalogDescription(*v)
	}
	return _u
}

// ClearCatalogDescription clears the value of the "catalog_description" field.
func (_u *ExactMappingUpdateOne) ClearCatalogDescription() *ExactMappingUpdateOne {
	_u.mutation.ClearCatalogDescription()
	return _u
}

// SetCatalogSecondaryCode sets the "catalog_secondary_code" field.
func (_u *ExactMappingUpdateOne) SetCatalogSecondaryCode(v string) *ExactMappingUpdateOne {
	_u.mutation.SetCatalogSecondaryCode(v)
	return _u
}

// SetNillableCatalogSecondaryCode sets the "catalog_secondary_code" field if the given value is not nil.
func (_u *ExactMappingUpdateOne) SetNillableCatalogSecondaryCode(v *string) *ExactMappingUpdateOne {
	if v != nil {
		_u.SetCatalogSecondaryCode(*v)
	}
	return _u
}

// ClearCatalogSecondaryCode clears the value of the "catalog_secondary_code" field.
func (_u *ExactMappingUpdateOne) ClearCatalogSecondaryCode() *ExactMappingUpdateOne {
	_u.mutation.ClearCatalogSecondaryCode()
	return _u
}

// Mutation returns the ExactMappingMutation object of the builder.
func (_u *ExactMappingUpdateOne) Mutation() *ExactMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExactMappingUpdate builder.
func (_u *ExactMappingUpdateOne) Where(ps ...predicate.ExactMapping) *ExactMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExactMappingUpdateOne) Select(field string, fields ...string) *ExactMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExactMapping entity.
func (_u *ExactMappingUpdateOne) Save(ctx context.Context) (*ExactMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExactMappingUpdateOne) SaveX(ctx context.Context) *ExactMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExactMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExactMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExactMappingUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceDescription(); ok {
		if err := exactmapping.InvoiceDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "invoice_description", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceSupplier(); ok {
		if err := exactmapping.InvoiceSupplierValidator(v); err != nil {
			return &ValidationError{Name: "invoice_supplier", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_supplier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogCode(); ok {
		if err := exactmapping.CatalogCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogSecondaryCode(); ok {
		if err := exactmapping.CatalogSecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_secondary_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_secondary_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ExactMappingUpdateOne) sqlSave(ctx context.Context) (_node *ExactMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exactmapping.Table, exactmapping.Columns, sqlgraph.NewFieldSpec(exactmapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExactMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exactmapping.FieldID)
		for _, f := range fields {
			if !exactmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exactmapping.FieldID {
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
	if value, ok := _u.mutation.InvoiceDescription(); ok {
		_spec.SetField(exactmapping.FieldInvoiceDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceSupplier(); ok {
		_spec.SetField(exactmapping.FieldInvoiceSupplier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogDescription(); ok {
		_spec.SetField(exactmapping.FieldCatalogDescription, field.TypeString, value)
	}
	if _u.mutation.CatalogDescriptionCleared() {
		_spec.ClearField(exactmapping.FieldCatalogDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogSecondaryCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.CatalogSecondaryCodeCleared() {
		_spec.ClearField(exactmapping.FieldCatalogSecondaryCode, field.TypeString)
	}
	_node = &ExactMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exactmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
