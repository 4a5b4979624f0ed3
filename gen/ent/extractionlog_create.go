// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
)

// ExtractionLogCreate is the builder for creating a ExtractionLog entity.
type ExtractionLogCreate struct {
	config
	mutation *ExtractionLogMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *ExtractionLogCreate) SetCompanyID(v string) *ExtractionLogCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *ExtractionLogCreate) SetUsername(v string) *ExtractionLogCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetLicenceID sets the "licence_id" field.
func (_c *ExtractionLogCreate) SetLicenceID(v string) *ExtractionLogCreate {
	_c.mutation.SetLicenceID(v)
	return _c
}

// SetNillableLicenceID sets the "licence_id" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableLicenceID(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetLicenceID(*v)
	}
	return _c
}

// SetRequests sets the "requests" field.
func (_c *ExtractionLogCreate) SetRequests(v int) *ExtractionLogCreate {
	_c.mutation.SetRequests(v)
	return _c
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableRequests(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetRequests(*v)
	}
	return _c
}

// SetRequestTokens sets the "request_tokens" field.
func (_c *ExtractionLogCreate) SetRequestTokens(v int) *ExtractionLogCreate {
	_c.mutation.SetRequestTokens(v)
	return _c
}

// SetNillableRequestTokens sets the "request_tokens" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableRequestTokens(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetRequestTokens(*v)
	}
	return _c
}

// SetResponseTokens sets the "response_tokens" field.
func (_c *ExtractionLogCreate) SetResponseTokens(v int) *ExtractionLogCreate {
	_c.mutation.SetResponseTokens(v)
	return _c
}

// SetNillableResponseTokens sets the "response_tokens" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableResponseTokens(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetResponseTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ExtractionLogCreate) SetTotalTokens(v int) *ExtractionLogCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableTotalTokens(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionLogCreate) SetStatus(v string) *ExtractionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *ExtractionLogCreate) SetRemarks(v string) *ExtractionLogCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableRemarks(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ExtractionLogCreate) SetPayload(v []byte) *ExtractionLogCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionLogCreate) SetCreatedAt(v time.Time) *ExtractionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableCreatedAt(v *time.Time) *ExtractionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionLogCreate) SetID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableID(v *uuid.UUID) *ExtractionLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_c *ExtractionLogCreate) Mutation() *ExtractionLogMutation {
	return _c.mutation
}

// Save creates the ExtractionLog in the database.
func (_c *ExtractionLogCreate) Save(ctx context.Context) (*ExtractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionLogCreate) SaveX(ctx context.Context) *ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionLogCreate) defaults() {
	if _, ok := _c.mutation.Requests(); !ok {
		v := extractionlog.DefaultRequests
		_c.mutation.SetRequests(v)
	}
	if _, ok := _c.mutation.RequestTokens(); !ok {
		v := extractionlog.DefaultRequestTokens
		_c.mutation.SetRequestTokens(v)
	}
	if _, ok := _c.mutation.ResponseTokens(); !ok {
		v := extractionlog.DefaultResponseTokens
		_c.mutation.SetResponseTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := extractionlog.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionLogCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "ExtractionLog.company_id"`)}
	}
	if v, ok := _c.mutation.CompanyID(); ok {
		if err := extractionlog.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.company_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "ExtractionLog.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := extractionlog.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.username": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LicenceID(); ok {
		if err := extractionlog.LicenceIDValidator(v); err != nil {
			return &ValidationError{Name: "licence_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.licence_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Requests(); !ok {
		return &ValidationError{Name: "requests", err: errors.New(`ent: missing required field "ExtractionLog.requests"`)}
	}
	if _, ok := _c.mutation.RequestTokens(); !ok {
		return &ValidationError{Name: "request_tokens", err: errors.New(`ent: missing required field "ExtractionLog.request_tokens"`)}
	}
	if _, ok := _c.mutation.ResponseTokens(); !ok {
		return &ValidationError{Name: "response_tokens", err: errors.New(`ent: missing required field "ExtractionLog.response_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ExtractionLog.total_tokens"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionLog.created_at"`)}
	}
	return nil
}

func (_c *ExtractionLogCreate) sqlSave(ctx context.Context) (*ExtractionLog, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionLogCreate) createSpec() (*ExtractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionlog.Table, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(extractionlog.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(extractionlog.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.LicenceID(); ok {
		_spec.SetField(extractionlog.FieldLicenceID, field.TypeString, value)
		_node.LicenceID = value
	}
	if value, ok := _c.mutation.Requests(); ok {
		_spec.SetField(extractionlog.FieldRequests, field.TypeInt, value)
		_node.Requests = value
	}
	if value, ok := _c.mutation.RequestTokens(); ok {
		_spec.SetField(extractionlog.FieldRequestTokens, field.TypeInt, value)
		_node.RequestTokens = value
	}
	if value, ok := _c.mutation.ResponseTokens(); ok {
		_spec.SetField(extractionlog.FieldResponseTokens, field.TypeInt, value)
		_node.ResponseTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(extractionlog.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(extractionlog.FieldRemarks, field.TypeString, value)
		_node.Remarks = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(extractionlog.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractionLogCreateBulk is the builder for creating many ExtractionLog entities in bulk.
type ExtractionLogCreateBulk struct {
	config
	err      error
	builders []*ExtractionLogCreate
}

// Save creates the ExtractionLog entities in the database.
func (_c *ExtractionLogCreateBulk) Save(ctx context.Context) ([]*ExtractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionLogMutation)
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
func (_c *ExtractionLogCreateBulk) SaveX(ctx context.Context) []*ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
