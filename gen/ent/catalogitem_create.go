// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
)

// CatalogItemCreate is the builder for creating a CatalogItem entity.
type CatalogItemCreate struct {
	config
	mutation *CatalogItemMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *CatalogItemCreate) SetCode(v string) *CatalogItemCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CatalogItemCreate) SetDescription(v string) *CatalogItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableDescription(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSecondaryCode sets the "secondary_code" field.
func (_c *CatalogItemCreate) SetSecondaryCode(v string) *CatalogItemCreate {
	_c.mutation.SetSecondaryCode(v)
	return _c
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableSecondaryCode(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetSecondaryCode(*v)
	}
	return _c
}

// SetBaseUnit sets the "base_unit" field.
func (_c *CatalogItemCreate) SetBaseUnit(v string) *CatalogItemCreate {
	_c.mutation.SetBaseUnit(v)
	return _c
}

// SetNillableBaseUnit sets the "base_unit" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableBaseUnit(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetBaseUnit(*v)
	}
	return _c
}

// SetConversionFactor sets the "conversion_factor" field.
func (_c *CatalogItemCreate) SetConversionFactor(v float64) *CatalogItemCreate {
	_c.mutation.SetConversionFactor(v)
	return _c
}

// SetNillableConversionFactor sets the "conversion_factor" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableConversionFactor(v *float64) *CatalogItemCreate {
	if v != nil {
		_c.SetConversionFactor(*v)
	}
	return _c
}

// SetAltUnit sets the "alt_unit" field.
func (_c *CatalogItemCreate) SetAltUnit(v string) *CatalogItemCreate {
	_c.mutation.SetAltUnit(v)
	return _c
}

// SetNillableAltUnit sets the "alt_unit" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableAltUnit(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetAltUnit(*v)
	}
	return _c
}

// SetTaxCode sets the "tax_code" field.
func (_c *CatalogItemCreate) SetTaxCode(v string) *CatalogItemCreate {
	_c.mutation.SetTaxCode(v)
	return _c
}

// SetNillableTaxCode sets the "tax_code" field if the given value is not nil.
func (_c *CatalogItemCreate) SetNillableTaxCode(v *string) *CatalogItemCreate {
	if v != nil {
		_c.SetTaxCode(*v)
	}
	return _c
}

// Mutation returns the CatalogItemMutation object of the builder.
func (_c *CatalogItemCreate) Mutation() *CatalogItemMutation {
	return _c.mutation
}

// Save creates the CatalogItem in the database.
func (_c *CatalogItemCreate) Save(ctx context.Context) (*CatalogItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogItemCreate) SaveX(ctx context.Context) *CatalogItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogItemCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "CatalogItem.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := catalogitem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SecondaryCode(); ok {
		if err := catalogitem.SecondaryCodeValidator(v); err != nil {
			return &ValidationError{Name: "secondary_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.secondary_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BaseUnit(); ok {
		if err := catalogitem.BaseUnitValidator(v); err != nil {
			return &ValidationError{Name: "base_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.base_unit": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AltUnit(); ok {
		if err := catalogitem.AltUnitValidator(v); err != nil {
			return &ValidationError{Name: "alt_unit", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.alt_unit": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TaxCode(); ok {
		if err := catalogitem.TaxCodeValidator(v); err != nil {
			return &ValidationError{Name: "tax_code", err: fmt.Errorf(`ent: validator failed for field "CatalogItem.tax_code": %w`, err)}
		}
	}
	return nil
}

func (_c *CatalogItemCreate) sqlSave(ctx context.Context) (*CatalogItem, error) {
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

func (_c *CatalogItemCreate) createSpec() (*CatalogItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogitem.Table, sqlgraph.NewFieldSpec(catalogitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(catalogitem.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(catalogitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SecondaryCode(); ok {
		_spec.SetField(catalogitem.FieldSecondaryCode, field.TypeString, value)
		_node.SecondaryCode = value
	}
	if value, ok := _c.mutation.BaseUnit(); ok {
		_spec.SetField(catalogitem.FieldBaseUnit, field.TypeString, value)
		_node.BaseUnit = value
	}
	if value, ok := _c.mutation.ConversionFactor(); ok {
		_spec.SetField(catalogitem.FieldConversionFactor, field.TypeFloat64, value)
		_node.ConversionFactor = &value
	}
	if value, ok := _c.mutation.AltUnit(); ok {
		_spec.SetField(catalogitem.FieldAltUnit, field.TypeString, value)
		_node.AltUnit = value
	}
	if value, ok := _c.mutation.TaxCode(); ok {
		_spec.SetField(catalogitem.FieldTaxCode, field.TypeString, value)
		_node.TaxCode = value
	}
	return _node, _spec
}

// CatalogItemCreateBulk is the builder for creating many CatalogItem entities in bulk.
type CatalogItemCreateBulk struct {
	config
	err      error
	builders []*CatalogItemCreate
}

// Save creates the CatalogItem entities in the database.
func (_c *CatalogItemCreateBulk) Save(ctx context.Context) ([]*CatalogItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogItemMutation)
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
func (_c *CatalogItemCreateBulk) SaveX(ctx context.Context) []*CatalogItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
