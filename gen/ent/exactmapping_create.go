// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
)

// ExactMappingCreate is the builder for creating a ExactMapping entity.
type ExactMappingCreate struct {
	config
	mutation *ExactMappingMutation
	hooks    []Hook
}

// SetInvoiceDescription sets the "invoice_description" field.
func (_c *ExactMappingCreate) SetInvoiceDescription(v string) *ExactMappingCreate {
	_c.mutation.SetInvoiceDescription(v)
	return _c
}

// SetInvoiceSupplier sets the "invoice_supplier" field.
func (_c *ExactMappingCreate) SetInvoiceSupplier(v string) *ExactMappingCreate {
	_c.mutation.SetInvoiceSupplier(v)
	return _c
}

// SetCatalogCode sets the "catalog_code" field.
func (_c *ExactMappingCreate) SetCatalogCode(v string) *ExactMappingCreate {
	_c.mutation.SetCatalogCode(v)
	return _c
}

// SetCatalogDescription sets the "catalog_description" field.
func (_c *ExactMappingCreate) SetCatalogDescription(v string) *ExactMappingCreate {
	_c.mutation.SetCatalogDescription(v)
	return _c
}

// SetNillableCatalogDescription sets the "catalog_description" field if the given value is not nil.
func (_c *ExactMappingCreate) SetNillableCatalogDescription(v *string) *ExactMappingCreate {
	if v != nil {
		_c.SetCatalogDescription(*v)
	}
	return _c
}

// SetCatalogSecondaryCode sets the "catalog_secondary_code" field.
func (_c *ExactMappingCreate) SetCatalogSecondaryCode(v string) *ExactMappingCreate {
	_c.mutation.SetCatalogSecondaryCode(v)
	return _c
}

// SetNillableCatalogSecondaryCode sets the "catalog_secondary_code" field if the given value is not nil.
func (_c *ExactMappingCreate) SetNillableCatalogSecondaryCode(v *string) *ExactMappingCreate {
	if v != nil {
		_c.SetCatalogSecondaryCode(*v)
	}
	return _c
}

// Mutation returns the ExactMappingMutation object of the builder.
func (_c *ExactMappingCreate) Mutation() *ExactMappingMutation {
	return _c.mutation
}

// Save creates the ExactMapping in the database.
func (_c *ExactMappingCreate) Save(ctx context.Context) (*ExactMapping, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExactMappingCreate) SaveX(ctx context.Context) *ExactMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExactMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExactMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExactMappingCreate) check() error {
	if _, ok := _c.mutation.InvoiceDescription(); !ok {
		return &ValidationError{Name: "invoice_description", err: errors.New(`ent: missing required field "ExactMapping.invoice_description"`)}
	}
	if v, ok := _c.mutation.InvoiceDescription(); ok {
		if err := exactmapping.InvoiceDescriptionValidator(v); err != nil {
			return &ValidationError{Name: "invoice_description", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InvoiceSupplier(); !ok {
		return &ValidationError{Name: "invoice_supplier", err: errors.New(`ent: missing required field "ExactMapping.invoice_supplier"`)}
	}
	if v, ok := _c.mutation.InvoiceSupplier(); ok {
		if err := exactmapping.InvoiceSupplierValidator(v); err != nil {
			return &ValidationError{Name: "invoice_supplier", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.invoice_supplier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CatalogCode(); !ok {
		return &ValidationError{Name: "catalog_code", err: errors.New(`ent: missing required field "ExactMapping.catalog_code"`)}
	}
	if v, ok := _c.mutation.CatalogCode(); ok {
		if err := exactmapping.CatalogCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CatalogSecondaryCode(); ok {
		if err := exactmapping.CatalogSecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_secondary_code", err: fmt.Errorf(`ent: validator failed for field "ExactMapping.catalog_secondary_code": %w`, err)}
		}
	}
	return nil
}

func (_c *ExactMappingCreate) sqlSave(ctx context.Context) (*ExactMapping, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExactMappingCreate) createSpec() (*ExactMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &ExactMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exactmapping.Table, sqlgraph.NewFieldSpec(exactmapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.InvoiceDescription(); ok {
		_spec.SetField(exactmapping.FieldInvoiceDescription, field.TypeString, value)
		_node.InvoiceDescription = value
	}
	if value, ok := _c.mutation.InvoiceSupplier(); ok {
		_spec.SetField(exactmapping.FieldInvoiceSupplier, field.TypeString, value)
		_node.InvoiceSupplier = value
	}
	if value, ok := _c.mutation.CatalogCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogCode, field.TypeString, value)
		_node.CatalogCode = value
	}
	if value, ok := _c.mutation.CatalogDescription(); ok {
		_spec.SetField(exactmapping.FieldCatalogDescription, field.TypeString, value)
		_node.CatalogDescription = value
	}
	if value, ok := _c.mutation.CatalogSecondaryCode(); ok {
		_spec.SetField(exactmapping.FieldCatalogSecondaryCode, field.TypeString, value)
		_node.CatalogSecondaryCode = value
	}
	return _node, _spec
}

// ExactMappingCreateBulk is the builder for creating many ExactMapping entities in bulk.
type ExactMappingCreateBulk struct {
	config
	err      error
	builders []*ExactMappingCreate
}

// Save creates the ExactMapping entities in the database.
func (_c *ExactMappingCreateBulk) Save(ctx context.Context) ([]*ExactMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExactMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExactMappingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExactMappingCreateBulk) SaveX(ctx context.Context) []*ExactMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExactMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExactMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
