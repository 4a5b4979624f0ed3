// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// ExtractionLogUpdate is the builder for updating ExtractionLog entities.
type ExtractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdate) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractionLogUpdate) SetCompanyID(v string) *ExtractionLogUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableCompanyID(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ExtractionLogUpdate) SetUsername(v string) *ExtractionLogUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableUsername(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLicenceID sets the "licence_id" field.
func (_u *ExtractionLogUpdate) SetLicenceID(v string) *ExtractionLogUpdate {
	_u.mutation.SetLicenceID(v)
	return _u
}

// SetNillableLicenceID sets the "licence_id" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableLicenceID(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetLicenceID(*v)
	}
	return _u
}

// ClearLicenceID clears the value of the "licence_id" field.
func (_u *ExtractionLogUpdate) ClearLicenceID() *ExtractionLogUpdate {
	_u.mutation.ClearLicenceID()
	return _u
}

// SetRequests sets the "requests" field.
func (_u *ExtractionLogUpdate) SetRequests(v int) *ExtractionLogUpdate {
	_u.mutation.ResetRequests()
	_u.mutation.SetRequests(v)
	return _u
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableRequests(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetRequests(*v)
	}
	return _u
}

// AddRequests adds value to the "requests" field.
func (_u *ExtractionLogUpdate) AddRequests(v int) *ExtractionLogUpdate {
	_u.mutation.AddRequests(v)
	return _u
}

// SetRequestTokens sets the "request_tokens" field.
func (_u *ExtractionLogUpdate) SetRequestTokens(v int) *ExtractionLogUpdate {
	_u.mutation.ResetRequestTokens()
	_u.mutation.SetRequestTokens(v)
	return _u
}

// SetNillableRequestTokens sets the "request_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableRequestTokens(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetRequestTokens(*v)
	}
	return _u
}

// AddRequestTokens adds value to the "request_tokens" field.
func (_u *ExtractionLogUpdate) AddRequestTokens(v int) *ExtractionLogUpdate {
	_u.mutation.AddRequestTokens(v)
	return _u
}

// SetResponseTokens sets the "response_tokens" field.
func (_u *ExtractionLogUpdate) SetResponseTokens(v int) *ExtractionLogUpdate {
	_u.mutation.ResetResponseTokens()
	_u.mutation.SetResponseTokens(v)
	return _u
}

// SetNillableResponseTokens sets the "response_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableResponseTokens(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetResponseTokens(*v)
	}
	return _u
}

// AddResponseTokens adds value to the "response_tokens" field.
func (_u *ExtractionLogUpdate) AddResponseTokens(v int) *ExtractionLogUpdate {
	_u.mutation.AddResponseTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExtractionLogUpdate) SetTotalTokens(v int) *ExtractionLogUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableTotalTokens(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExtractionLogUpdate) AddTotalTokens(v int) *ExtractionLogUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionLogUpdate) SetStatus(v string) *ExtractionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableStatus(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *ExtractionLogUpdate) SetRemarks(v string) *ExtractionLogUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableRemarks(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *ExtractionLogUpdate) ClearRemarks() *ExtractionLogUpdate {
	_u.mutation.ClearRemarks()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExtractionLogUpdate) SetPayload(v []byte) *ExtractionLogUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ExtractionLogUpdate) ClearPayload() *ExtractionLogUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdate) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdate) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := extractionlog.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := extractionlog.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenceID(); ok {
		if err := extractionlog.LicenceIDValidator(v); err != nil {
			return &ValidationError{Name: "licence_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.licence_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(extractionlog.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(extractionlog.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenceID(); ok {
		_spec.SetField(extractionlog.FieldLicenceID, field.TypeString, value)
	}
	if _u.mutation.LicenceIDCleared() {
		_spec.ClearField(extractionlog.FieldLicenceID, field.TypeString)
	}
	if value, ok := _u.mutation.Requests(); ok {
		_spec.SetField(extractionlog.FieldRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequests(); ok {
		_spec.AddField(extractionlog.FieldRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestTokens(); ok {
		_spec.SetField(extractionlog.FieldRequestTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTokens(); ok {
		_spec.AddField(extractionlog.FieldRequestTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTokens(); ok {
		_spec.SetField(extractionlog.FieldResponseTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTokens(); ok {
		_spec.AddField(extractionlog.FieldResponseTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(extractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(extractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(extractionlog.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(extractionlog.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extractionlog.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(extractionlog.FieldPayload, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionLogUpdateOne is the builder for updating a single ExtractionLog entity.
type ExtractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *ExtractionLogUpdateOne) SetCompanyID(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableCompanyID(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ExtractionLogUpdateOne) SetUsername(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableUsername(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLicenceID sets the "licence_id" field.
func (_u *ExtractionLogUpdateOne) SetLicenceID(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetLicenceID(v)
	return _u
}

// SetNillableLicenceID sets the "licence_id" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableLicenceID(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetLicenceID(*v)
	}
	return _u
}

// ClearLicenceID clears the value of the "licence_id" field.
func (_u *ExtractionLogUpdateOne) ClearLicenceID() *ExtractionLogUpdateOne {
	_u.mutation.ClearLicenceID()
	return _u
}

// SetRequests sets the "requests" field.
func (_u *ExtractionLogUpdateOne) SetRequests(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetRequests()
	_u.mutation.SetRequests(v)
	return _u
}

// SetNillableRequests sets the "requests" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableRequests(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetRequests(*v)
	}
	return _u
}

// AddRequests adds value to the "requests" field.
func (_u *ExtractionLogUpdateOne) AddRequests(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddRequests(v)
	return _u
}

// SetRequestTokens sets the "request_tokens" field.
func (_u *ExtractionLogUpdateOne) SetRequestTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetRequestTokens()
	_u.mutation.SetRequestTokens(v)
	return _u
}

// SetNillableRequestTokens sets the "request_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableRequestTokens(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetRequestTokens(*v)
	}
	return _u
}

// AddRequestTokens adds value to the "request_tokens" field.
func (_u *ExtractionLogUpdateOne) AddRequestTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddRequestTokens(v)
	return _u
}

// SetResponseTokens sets the "response_tokens" field.
func (_u *ExtractionLogUpdateOne) SetResponseTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetResponseTokens()
	_u.mutation.SetResponseTokens(v)
	return _u
}

// SetNillableResponseTokens sets the "response_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableResponseTokens(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetResponseTokens(*v)
	}
	return _u
}

// AddResponseTokens adds value to the "response_tokens" field.
func (_u *ExtractionLogUpdateOne) AddResponseTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddResponseTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExtractionLogUpdateOne) SetTotalTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableTotalTokens(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExtractionLogUpdateOne) AddTotalTokens(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionLogUpdateOne) SetStatus(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableStatus(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *ExtractionLogUpdateOne) SetRemarks(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableRemarks(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *ExtractionLogUpdateOne) ClearRemarks() *ExtractionLogUpdateOne {
	_u.mutation.ClearRemarks()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExtractionLogUpdateOne) SetPayload(v []byte) *ExtractionLogUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ExtractionLogUpdateOne) ClearPayload() *ExtractionLogUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdateOne) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdateOne) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionLogUpdateOne) Select(field string, fields ...string) *ExtractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionLog entity.
func (_u *ExtractionLogUpdateOne) Save(ctx context.Context) (*ExtractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) SaveX(ctx context.Context) *ExtractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyID(); ok {
		if err := extractionlog.CompanyIDValidator(v); err != nil {
			return &ValidationError{Name: "company_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.company_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := extractionlog.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenceID(); ok {
		if err := extractionlog.LicenceIDValidator(v); err != nil {
			return &ValidationError{Name: "licence_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.licence_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionlog.FieldID)
		for _, f := range fields {
			if !extractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionlog.FieldID {
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
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(extractionlog.FieldCompanyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(extractionlog.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenceID(); ok {
		_spec.SetField(extractionlog.FieldLicenceID, field.TypeString, value)
	}
	if _u.mutation.LicenceIDCleared() {
		_spec.ClearField(extractionlog.FieldLicenceID, field.TypeString)
	}
	if value, ok := _u.mutation.Requests(); ok {
		_spec.SetField(extractionlog.FieldRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequests(); ok {
		_spec.AddField(extractionlog.FieldRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestTokens(); ok {
		_spec.SetField(extractionlog.FieldRequestTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestTokens(); ok {
		_spec.AddField(extractionlog.FieldRequestTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTokens(); ok {
		_spec.SetField(extractionlog.FieldResponseTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTokens(); ok {
		_spec.AddField(extractionlog.FieldResponseTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(extractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(extractionlog.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(extractionlog.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(extractionlog.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extractionlog.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(extractionlog.FieldPayload, field.TypeBytes)
	}
	_node = &ExtractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
