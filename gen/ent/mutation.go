// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCatalogItem   = "CatalogItem"
	TypeExactMapping  = "ExactMapping"
	TypeExtractionLog = "ExtractionLog"
)

// CatalogItemMutation represents an operation that mutates the CatalogItem nodes in the graph.
type CatalogItemMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	code                 *string
	description          *string
	secondary_code       *string
	base_unit            *string
	conversion_factor    *float64
	addconversion_factor *float64
	alt_unit             *string
	tax_code             *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*CatalogItem, error)
	predicates           []predicate.CatalogItem
}

var _ ent.Mutation = (*CatalogItemMutation)(nil)

// catalogitemOption allows management of the mutation configuration using functional options.
type catalogitemOption func(*CatalogItemMutation)

// newCatalogItemMutation creates new mutation for the CatalogItem entity.
func newCatalogItemMutation(c config, op Op, opts ...catalogitemOption) *CatalogItemMutation {
	m := &CatalogItemMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogItemID sets the ID field of the mutation.
func withCatalogItemID(id int) catalogitemOption {
	return func(m *CatalogItemMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogItem
		)
		m.oldValue = func(ctx context.Context) (*CatalogItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogItem sets the old CatalogItem of the mutation.
func withCatalogItem(node *CatalogItem) catalogitemOption {
	return func(m *CatalogItemMutation) {
		m.oldValue = func(context.Context) (*CatalogItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *CatalogItemMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *CatalogItemMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *CatalogItemMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *CatalogItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CatalogItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CatalogItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[catalogitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CatalogItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CatalogItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, catalogitem.FieldDescription)
}

// SetSecondaryCode sets the "secondary_code" field.
func (m *CatalogItemMutation) SetSecondaryCode(s string) {
	m.secondary_code = &s
}

// SecondaryCode returns the value of the "secondary_code" field in the mutation.
func (m *CatalogItemMutation) SecondaryCode() (r string, exists bool) {
	v := m.secondary_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryCode returns the old "secondary_code" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldSecondaryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryCode: %w", err)
	}
	return oldValue.SecondaryCode, nil
}

// ClearSecondaryCode clears the value of the "secondary_code" field.
func (m *CatalogItemMutation) ClearSecondaryCode() {
	m.secondary_code = nil
	m.clearedFields[catalogitem.FieldSecondaryCode] = struct{}{}
}

// SecondaryCodeCleared returns if the "secondary_code" field was cleared in this mutation.
func (m *CatalogItemMutation) SecondaryCodeCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldSecondaryCode]
	return ok
}

// ResetSecondaryCode resets all changes to the "secondary_code" field.
func (m *CatalogItemMutation) ResetSecondaryCode() {
	m.secondary_code = nil
	delete(m.clearedFields, catalogitem.FieldSecondaryCode)
}

// SetBaseUnit sets the "base_unit" field.
func (m *CatalogItemMutation) SetBaseUnit(s string) {
	m.base_unit = &s
}

// BaseUnit returns the value of the "base_unit" field in the mutation.
func (m *CatalogItemMutation) BaseUnit() (r string, exists bool) {
	v := m.base_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseUnit returns the old "base_unit" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldBaseUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseUnit: %w", err)
	}
	return oldValue.BaseUnit, nil
}

// ClearBaseUnit clears the value of the "base_unit" field.
func (m *CatalogItemMutation) ClearBaseUnit() {
	m.base_unit = nil
	m.clearedFields[catalogitem.FieldBaseUnit] = struct{}{}
}

// BaseUnitCleared returns if the "base_unit" field was cleared in this mutation.
func (m *CatalogItemMutation) BaseUnitCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldBaseUnit]
	return ok
}

// ResetBaseUnit resets all changes to the "base_unit" field.
func (m *CatalogItemMutation) ResetBaseUnit() {
	m.base_unit = nil
	delete(m.clearedFields, catalogitem.FieldBaseUnit)
}

// SetConversionFactor sets the "conversion_factor" field.
func (m *CatalogItemMutation) SetConversionFactor(f float64) {
	m.conversion_factor = &f
	m.addconversion_factor = nil
}

// ConversionFactor returns the value of the "conversion_factor" field in the mutation.
func (m *CatalogItemMutation) ConversionFactor() (r float64, exists bool) {
	v := m.conversion_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldConversionFactor returns the old "conversion_factor" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldConversionFactor(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversionFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversionFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversionFactor: %w", err)
	}
	return oldValue.ConversionFactor, nil
}

// AddConversionFactor adds f to the "conversion_factor" field.
func (m *CatalogItemMutation) AddConversionFactor(f float64) {
	if m.addconversion_factor != nil {
		*m.addconversion_factor += f
	} else {
		m.addconversion_factor = &f
	}
}

// AddedConversionFactor returns the value that was added to the "conversion_factor" field in this mutation.
func (m *CatalogItemMutation) AddedConversionFactor() (r float64, exists bool) {
	v := m.addconversion_factor
	if v == nil {
		return
	}
	return *v, true
}

// ClearConversionFactor clears the value of the "conversion_factor" field.
func (m *CatalogItemMutation) ClearConversionFactor() {
	m.conversion_factor = nil
	m.addconversion_factor = nil
	m.clearedFields[catalogitem.FieldConversionFactor] = struct{}{}
}

// ConversionFactorCleared returns if the "conversion_factor" field was cleared in this mutation.
func (m *CatalogItemMutation) ConversionFactorCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldConversionFactor]
	return ok
}

// ResetConversionFactor resets all changes to the "conversion_factor" field.
func (m *CatalogItemMutation) ResetConversionFactor() {
	m.conversion_factor = nil
	m.addconversion_factor = nil
	delete(m.clearedFields, catalogitem.FieldConversionFactor)
}

// SetAltUnit sets the "alt_unit" field.
func (m *CatalogItemMutation) SetAltUnit(s string) {
	m.alt_unit = &s
}

// AltUnit returns the value of the "alt_unit" field in the mutation.
func (m *CatalogItemMutation) AltUnit() (r string, exists bool) {
	v := m.alt_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldAltUnit returns the old "alt_unit" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldAltUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltUnit: %w", err)
	}
	return oldValue.AltUnit, nil
}

// ClearAltUnit clears the value of the "alt_unit" field.
func (m *CatalogItemMutation) ClearAltUnit() {
	m.alt_unit = nil
	m.clearedFields[catalogitem.FieldAltUnit] = struct{}{}
}

// AltUnitCleared returns if the "alt_unit" field was cleared in this mutation.
func (m *CatalogItemMutation) AltUnitCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldAltUnit]
	return ok
}

// ResetAltUnit resets all changes to the "alt_unit" field.
func (m *CatalogItemMutation) ResetAltUnit() {
	m.alt_unit = nil
	delete(m.clearedFields, catalogitem.FieldAltUnit)
}

// SetTaxCode sets the "tax_code" field.
func (m *CatalogItemMutation) SetTaxCode(s string) {
	m.tax_code = &s
}

// TaxCode returns the value of the "tax_code" field in the mutation.
func (m *CatalogItemMutation) TaxCode() (r string, exists bool) {
	v := m.tax_code
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxCode returns the old "tax_code" field's value of the CatalogItem entity.
// If the CatalogItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogItemMutation) OldTaxCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxCode: %w", err)
	}
	return oldValue.TaxCode, nil
}

// ClearTaxCode clears the value of the "tax_code" field.
func (m *CatalogItemMutation) ClearTaxCode() {
	m.tax_code = nil
	m.clearedFields[catalogitem.FieldTaxCode] = struct{}{}
}

// TaxCodeCleared returns if the "tax_code" field was cleared in this mutation.
func (m *CatalogItemMutation) TaxCodeCleared() bool {
	_, ok := m.clearedFields[catalogitem.FieldTaxCode]
	return ok
}

// ResetTaxCode resets all changes to the "tax_code" field.
func (m *CatalogItemMutation) ResetTaxCode() {
	m.tax_code = nil
	delete(m.clearedFields, catalogitem.FieldTaxCode)
}

// Where appends a list predicates to the CatalogItemMutation builder.
func (m *CatalogItemMutation) Where(ps ...predicate.CatalogItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogItem).
func (m *CatalogItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.code != nil {
		fields = append(fields, catalogitem.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, catalogitem.FieldDescription)
	}
	if m.secondary_code != nil {
		fields = append(fields, catalogitem.FieldSecondaryCode)
	}
	if m.base_unit != nil {
		fields = append(fields, catalogitem.FieldBaseUnit)
	}
	if m.conversion_factor != nil {
		fields = append(fields, catalogitem.FieldConversionFactor)
	}
	if m.alt_unit != nil {
		fields = append(fields, catalogitem.FieldAltUnit)
	}
	if m.tax_code != nil {
		fields = append(fields, catalogitem.FieldTaxCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogitem.FieldCode:
		return m.Code()
	case catalogitem.FieldDescription:
		return m.Description()
	case catalogitem.FieldSecondaryCode:
		return m.SecondaryCode()
	case catalogitem.FieldBaseUnit:
		return m.BaseUnit()
	case catalogitem.FieldConversionFactor:
		return m.ConversionFactor()
	case catalogitem.FieldAltUnit:
		return m.AltUnit()
	case catalogitem.FieldTaxCode:
		return m.TaxCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogitem.FieldCode:
		return m.OldCode(ctx)
	case catalogitem.FieldDescription:
		return m.OldDescription(ctx)
	case catalogitem.FieldSecondaryCode:
		return m.OldSecondaryCode(ctx)
	case catalogitem.FieldBaseUnit:
		return m.OldBaseUnit(ctx)
	case catalogitem.FieldConversionFactor:
		return m.OldConversionFactor(ctx)
	case catalogitem.FieldAltUnit:
		return m.OldAltUnit(ctx)
	case catalogitem.FieldTaxCode:
		return m.OldTaxCode(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogitem.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case catalogitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case catalogitem.FieldSecondaryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryCode(v)
		return nil
	case catalogitem.FieldBaseUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseUnit(v)
		return nil
	case catalogitem.FieldConversionFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversionFactor(v)
		return nil
	case catalogitem.FieldAltUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltUnit(v)
		return nil
	case catalogitem.FieldTaxCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxCode(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogItemMutation) AddedFields() []string {
	var fields []string
	if m.addconversion_factor != nil {
		fields = append(fields, catalogitem.FieldConversionFactor)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case catalogitem.FieldConversionFactor:
		return m.AddedConversionFactor()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case catalogitem.FieldConversionFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConversionFactor(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(catalogitem.FieldDescription) {
		fields = append(fields, catalogitem.FieldDescription)
	}
	if m.FieldCleared(catalogitem.FieldSecondaryCode) {
		fields = append(fields, catalogitem.FieldSecondaryCode)
	}
	if m.FieldCleared(catalogitem.FieldBaseUnit) {
		fields = append(fields, catalogitem.FieldBaseUnit)
	}
	if m.FieldCleared(catalogitem.FieldConversionFactor) {
		fields = append(fields, catalogitem.FieldConversionFactor)
	}
	if m.FieldCleared(catalogitem.FieldAltUnit) {
		fields = append(fields, catalogitem.FieldAltUnit)
	}
	if m.FieldCleared(catalogitem.FieldTaxCode) {
		fields = append(fields, catalogitem.FieldTaxCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogItemMutation) ClearField(name string) error {
	switch name {
	case catalogitem.FieldDescription:
		m.ClearDescription()
		return nil
	case catalogitem.FieldSecondaryCode:
		m.ClearSecondaryCode()
		return nil
	case catalogitem.FieldBaseUnit:
		m.ClearBaseUnit()
		return nil
	case catalogitem.FieldConversionFactor:
		m.ClearConversionFactor()
		return nil
	case catalogitem.FieldAltUnit:
		m.ClearAltUnit()
		return nil
	case catalogitem.FieldTaxCode:
		m.ClearTaxCode()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogItemMutation) ResetField(name string) error {
	switch name {
	case catalogitem.FieldCode:
		m.ResetCode()
		return nil
	case catalogitem.FieldDescription:
		m.ResetDescription()
		return nil
	case catalogitem.FieldSecondaryCode:
		m.ResetSecondaryCode()
		return nil
	case catalogitem.FieldBaseUnit:
		m.ResetBaseUnit()
		return nil
	case catalogitem.FieldConversionFactor:
		m.ResetConversionFactor()
		return nil
	case catalogitem.FieldAltUnit:
		m.ResetAltUnit()
		return nil
	case catalogitem.FieldTaxCode:
		m.ResetTaxCode()
		return nil
	}
	return fmt.Errorf("unknown CatalogItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CatalogItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CatalogItem edge %s", name)
}

// ExactMappingMutation represents an operation that mutates the ExactMapping nodes in the graph.
type ExactMappingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	invoice_description    *string
	invoice_supplier       *string
	catalog_code           *string
	catalog_description    *string
	catalog_secondary_code *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ExactMapping, error)
	predicates             []predicate.ExactMapping
}

var _ ent.Mutation = (*ExactMappingMutation)(nil)

// exactmappingOption allows management of the mutation configuration using functional options.
type exactmappingOption func(*ExactMappingMutation)

// newExactMappingMutation creates new mutation for the ExactMapping entity.
func newExactMappingMutation(c config, op Op, opts ...exactmappingOption) *ExactMappingMutation {
	m := &ExactMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeExactMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExactMappingID sets the ID field of the mutation.
func withExactMappingID(id int) exactmappingOption {
	return func(m *ExactMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *ExactMapping
		)
		m.oldValue = func(ctx context.Context) (*ExactMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExactMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExactMapping sets the old ExactMapping of the mutation.
func withExactMapping(node *ExactMapping) exactmappingOption {
	return func(m *ExactMappingMutation) {
		m.oldValue = func(context.Context) (*ExactMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExactMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExactMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExactMappingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExactMappingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExactMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceDescription sets the "invoice_description" field.
func (m *ExactMappingMutation) SetInvoiceDescription(s string) {
	m.invoice_description = &s
}

// InvoiceDescription returns the value of the "invoice_description" field in the mutation.
func (m *ExactMappingMutation) InvoiceDescription() (r string, exists bool) {
	v := m.invoice_description
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDescription returns the old "invoice_description" field's value of the ExactMapping entity.
// If the ExactMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExactMappingMutation) OldInvoiceDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDescription: %w", err)
	}
	return oldValue.InvoiceDescription, nil
}

// ResetInvoiceDescription resets all changes to the "invoice_description" field.
func (m *ExactMappingMutation) ResetInvoiceDescription() {
	m.invoice_description = nil
}

// SetInvoiceSupplier sets the "invoice_supplier" field.
func (m *ExactMappingMutation) SetInvoiceSupplier(s string) {
	m.invoice_supplier = &s
}

// InvoiceSupplier returns the value of the "invoice_supplier" field in the mutation.
func (m *ExactMappingMutation) InvoiceSupplier() (r string, exists bool) {
	v := m.invoice_supplier
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceSupplier returns the old "invoice_supplier" field's value of the ExactMapping entity.
// If the ExactMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExactMappingMutation) OldInvoiceSupplier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceSupplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceSupplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceSupplier: %w", err)
	}
	return oldValue.InvoiceSupplier, nil
}

// ResetInvoiceSupplier resets all changes to the "invoice_supplier" field.
func (m *ExactMappingMutation) ResetInvoiceSupplier() {
	m.invoice_supplier = nil
}

// SetCatalogCode sets the "catalog_code" field.
func (m *ExactMappingMutation) SetCatalogCode(s string) {
	m.catalog_code = &s
}

// CatalogCode returns the value of the "catalog_code" field in the mutation.
func (m *ExactMappingMutation) CatalogCode() (r string, exists bool) {
	v := m.catalog_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogCode returns the old "catalog_code" field's value of the ExactMapping entity.
// If the ExactMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExactMappingMutation) OldCatalogCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogCode: %w", err)
	}
	return oldValue.CatalogCode, nil
}

// ResetCatalogCode resets all changes to the "catalog_code" field.
func (m *ExactMappingMutation) ResetCatalogCode() {
	m.catalog_code = nil
}

// SetCatalogDescription sets the "catalog_description" field.
func (m *ExactMappingMutation) SetCatalogDescription(s string) {
	m.catalog_description = &s
}

// CatalogDescription returns the value of the "catalog_description" field in the mutation.
func (m *ExactMappingMutation) CatalogDescription() (r string, exists bool) {
	v := m.catalog_description
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogDescription returns the old "catalog_description" field's value of the ExactMapping entity.
// If the ExactMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExactMappingMutation) OldCatalogDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogDescription: %w", err)
	}
	return oldValue.CatalogDescription, nil
}

// ClearCatalogDescription clears the value of the "catalog_description" field.
func (m *ExactMappingMutation) ClearCatalogDescription() {
	m.catalog_description = nil
	m.clearedFields[exactmapping.FieldCatalogDescription] = struct{}{}
}

// CatalogDescriptionCleared returns if the "catalog_description" field was cleared in this mutation.
func (m *ExactMappingMutation) CatalogDescriptionCleared() bool {
	_, ok := m.clearedFields[exactmapping.FieldCatalogDescription]
	return ok
}

// ResetCatalogDescription resets all changes to the "catalog_description" field.
func (m *ExactMappingMutation) ResetCatalogDescription() {
	m.catalog_description = nil
	delete(m.clearedFields, exactmapping.FieldCatalogDescription)
}

// SetCatalogSecondaryCode sets the "catalog_secondary_code" field.
func (m *ExactMappingMutation) SetCatalogSecondaryCode(s string) {
	m.catalog_secondary_code = &s
}

// CatalogSecondaryCode returns the value of the "catalog_secondary_code" field in the mutation.
func (m *ExactMappingMutation) CatalogSecondaryCode() (r string, exists bool) {
	v := m.catalog_secondary_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogSecondaryCode returns the old "catalog_secondary_code" field's value of the ExactMapping entity.
// If the ExactMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExactMappingMutation) OldCatalogSecondaryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogSecondaryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogSecondaryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogSecondaryCode: %w", err)
	}
	return oldValue.CatalogSecondaryCode, nil
}

// ClearCatalogSecondaryCode clears the value of the "catalog_secondary_code" field.
func (m *ExactMappingMutation) ClearCatalogSecondaryCode() {
	m.catalog_secondary_code = nil
	m.clearedFields[exactmapping.FieldCatalogSecondaryCode] = struct{}{}
}

// CatalogSecondaryCodeCleared returns if the "catalog_secondary_code" field was cleared in this mutation.
func (m *ExactMappingMutation) CatalogSecondaryCodeCleared() bool {
	_, ok := m.clearedFields[exactmapping.FieldCatalogSecondaryCode]
	return ok
}

// ResetCatalogSecondaryCode resets all changes to the "catalog_secondary_code" field.
func (m *ExactMappingMutation) ResetCatalogSecondaryCode() {
	m.catalog_secondary_code = nil
	delete(m.clearedFields, exactmapping.FieldCatalogSecondaryCode)
}

// Where appends a list predicates to the ExactMappingMutation builder.
func (m *ExactMappingMutation) Where(ps ...predicate.ExactMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExactMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExactMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExactMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExactMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExactMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExactMapping).
func (m *ExactMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExactMappingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.invoice_description != nil {
		fields = append(fields, exactmapping.FieldInvoiceDescription)
	}
	if m.invoice_supplier != nil {
		fields = append(fields, exactmapping.FieldInvoiceSupplier)
	}
	if m.catalog_code != nil {
		fields = append(fields, exactmapping.FieldCatalogCode)
	}
	if m.catalog_description != nil {
		fields = append(fields, exactmapping.FieldCatalogDescription)
	}
	if m.catalog_secondary_code != nil {
		fields = append(fields, exactmapping.FieldCatalogSecondaryCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExactMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exactmapping.FieldInvoiceDescription:
		return m.InvoiceDescription()
	case exactmapping.FieldInvoiceSupplier:
		return m.InvoiceSupplier()
	case exactmapping.FieldCatalogCode:
		return m.CatalogCode()
	case exactmapping.FieldCatalogDescription:
		return m.CatalogDescription()
	case exactmapping.FieldCatalogSecondaryCode:
		return m.CatalogSecondaryCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExactMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exactmapping.FieldInvoiceDescription:
		return m.OldInvoiceDescription(ctx)
	case exactmapping.FieldInvoiceSupplier:
		return m.OldInvoiceSupplier(ctx)
	case exactmapping.FieldCatalogCode:
		return m.OldCatalogCode(ctx)
	case exactmapping.FieldCatalogDescription:
		return m.OldCatalogDescription(ctx)
	case exactmapping.FieldCatalogSecondaryCode:
		return m.OldCatalogSecondaryCode(ctx)
	}
	return nil, fmt.Errorf("unknown ExactMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExactMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exactmapping.FieldInvoiceDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDescription(v)
		return nil
	case exactmapping.FieldInvoiceSupplier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceSupplier(v)
		return nil
	case exactmapping.FieldCatalogCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogCode(v)
		return nil
	case exactmapping.FieldCatalogDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogDescription(v)
		return nil
	case exactmapping.FieldCatalogSecondaryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogSecondaryCode(v)
		return nil
	}
	return fmt.Errorf("unknown ExactMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExactMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExactMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExactMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExactMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExactMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exactmapping.FieldCatalogDescription) {
		fields = append(fields, exactmapping.FieldCatalogDescription)
	}
	if m.FieldCleared(exactmapping.FieldCatalogSecondaryCode) {
		fields = append(fields, exactmapping.FieldCatalogSecondaryCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExactMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExactMappingMutation) ClearField(name string) error {
	switch name {
	case exactmapping.FieldCatalogDescription:
		m.ClearCatalogDescription()
		return nil
	case exactmapping.FieldCatalogSecondaryCode:
		m.ClearCatalogSecondaryCode()
		return nil
	}
	return fmt.Errorf("unknown ExactMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExactMappingMutation) ResetField(name string) error {
	switch name {
	case exactmapping.FieldInvoiceDescription:
		m.ResetInvoiceDescription()
		return nil
	case exactmapping.FieldInvoiceSupplier:
		m.ResetInvoiceSupplier()
		return nil
	case exactmapping.FieldCatalogCode:
		m.ResetCatalogCode()
		return nil
	case exactmapping.FieldCatalogDescription:
		m.ResetCatalogDescription()
		return nil
	case exactmapping.FieldCatalogSecondaryCode:
		m.ResetCatalogSecondaryCode()
		return nil
	}
	return fmt.Errorf("unknown ExactMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExactMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExactMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExactMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExactMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExactMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExactMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExactMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExactMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExactMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExactMapping edge %s", name)
}

// ExtractionLogMutation represents an operation that mutates the ExtractionLog nodes in the graph.
type ExtractionLogMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	company_id         *string
	username           *string
	licence_id         *string
	requests           *int
	addrequests        *int
	request_tokens     *int
	addrequest_tokens  *int
	response_tokens    *int
	addresponse_tokens *int
	total_tokens       *int
	addtotal_tokens    *int
	status             *string
	remarks            *string
	payload            *[]byte
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ExtractionLog, error)
	predicates         []predicate.ExtractionLog
}

var _ ent.Mutation = (*ExtractionLogMutation)(nil)

// extractionlogOption allows management of the mutation configuration using functional options.
type extractionlogOption func(*ExtractionLogMutation)

// newExtractionLogMutation creates new mutation for the ExtractionLog entity.
func newExtractionLogMutation(c config, op Op, opts ...extractionlogOption) *ExtractionLogMutation {
	m := &ExtractionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionLogID sets the ID field of the mutation.
func withExtractionLogID(id uuid.UUID) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionLog
		)
		m.oldValue = func(ctx context.Context) (*ExtractionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionLog sets the old ExtractionLog of the mutation.
func withExtractionLog(node *ExtractionLog) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		m.oldValue = func(context.Context) (*ExtractionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionLog entities.
func (m *ExtractionLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *ExtractionLogMutation) SetCompanyID(s string) {
	m.company_id = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ExtractionLogMutation) CompanyID() (r string, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ExtractionLogMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetUsername sets the "username" field.
func (m *ExtractionLogMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ExtractionLogMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ExtractionLogMutation) ResetUsername() {
	m.username = nil
}

// SetLicenceID sets the "licence_id" field.
func (m *ExtractionLogMutation) SetLicenceID(s string) {
	m.licence_id = &s
}

// LicenceID returns the value of the "licence_id" field in the mutation.
func (m *ExtractionLogMutation) LicenceID() (r string, exists bool) {
	v := m.licence_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenceID returns the old "licence_id" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldLicenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenceID: %w", err)
	}
	return oldValue.LicenceID, nil
}

// ClearLicenceID clears the value of the "licence_id" field.
func (m *ExtractionLogMutation) ClearLicenceID() {
	m.licence_id = nil
	m.clearedFields[extractionlog.FieldLicenceID] = struct{}{}
}

// LicenceIDCleared returns if the "licence_id" field was cleared in this mutation.
func (m *ExtractionLogMutation) LicenceIDCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldLicenceID]
	return ok
}

// ResetLicenceID resets all changes to the "licence_id" field.
func (m *ExtractionLogMutation) ResetLicenceID() {
	m.licence_id = nil
	delete(m.clearedFields, extractionlog.FieldLicenceID)
}

// SetRequests sets the "requests" field.
func (m *ExtractionLogMutation) SetRequests(i int) {
	m.requests = &i
	m.addrequests = nil
}

// Requests returns the value of the "requests" field in the mutation.
func (m *ExtractionLogMutation) Requests() (r int, exists bool) {
	v := m.requests
	if v == nil {
		return
	}
	return *v, true
}

// OldRequests returns the old "requests" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequests: %w", err)
	}
	return oldValue.Requests, nil
}

// AddRequests adds i to the "requests" field.
func (m *ExtractionLogMutation) AddRequests(i int) {
	if m.addrequests != nil {
		*m.addrequests += i
	} else {
		m.addrequests = &i
	}
}

// AddedRequests returns the value that was added to the "requests" field in this mutation.
func (m *ExtractionLogMutation) AddedRequests() (r int, exists bool) {
	v := m.addrequests
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequests resets all changes to the "requests" field.
func (m *ExtractionLogMutation) ResetRequests() {
	m.requests = nil
	m.addrequests = nil
}

// SetRequestTokens sets the "request_tokens" field.
func (m *ExtractionLogMutation) SetRequestTokens(i int) {
	m.request_tokens = &i
	m.addrequest_tokens = nil
}

// RequestTokens returns the value of the "request_tokens" field in the mutation.
func (m *ExtractionLogMutation) RequestTokens() (r int, exists bool) {
	v := m.request_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestTokens returns the old "request_tokens" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRequestTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestTokens: %w", err)
	}
	return oldValue.RequestTokens, nil
}

// AddRequestTokens adds i to the "request_tokens" field.
func (m *ExtractionLogMutation) AddRequestTokens(i int) {
	if m.addrequest_tokens != nil {
		*m.addrequest_tokens += i
	} else {
		m.addrequest_tokens = &i
	}
}

// AddedRequestTokens returns the value that was added to the "request_tokens" field in this mutation.
func (m *ExtractionLogMutation) AddedRequestTokens() (r int, exists bool) {
	v := m.addrequest_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestTokens resets all changes to the "request_tokens" field.
func (m *ExtractionLogMutation) ResetRequestTokens() {
	m.request_tokens = nil
	m.addrequest_tokens = nil
}

// SetResponseTokens sets the "response_tokens" field.
func (m *ExtractionLogMutation) SetResponseTokens(i int) {
	m.response_tokens = &i
	m.addresponse_tokens = nil
}

// ResponseTokens returns the value of the "response_tokens" field in the mutation.
func (m *ExtractionLogMutation) ResponseTokens() (r int, exists bool) {
	v := m.response_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTokens returns the old "response_tokens" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldResponseTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTokens: %w", err)
	}
	return oldValue.ResponseTokens, nil
}

// AddResponseTokens adds i to the "response_tokens" field.
func (m *ExtractionLogMutation) AddResponseTokens(i int) {
	if m.addresponse_tokens != nil {
		*m.addresponse_tokens += i
	} else {
		m.addresponse_tokens = &i
	}
}

// AddedResponseTokens returns the value that was added to the "response_tokens" field in this mutation.
func (m *ExtractionLogMutation) AddedResponseTokens() (r int, exists bool) {
	v := m.addresponse_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTokens resets all changes to the "response_tokens" field.
func (m *ExtractionLogMutation) ResetResponseTokens() {
	m.response_tokens = nil
	m.addresponse_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ExtractionLogMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ExtractionLogMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ExtractionLogMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ExtractionLogMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ExtractionLogMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionLogMutation) ResetStatus() {
	m.status = nil
}

// SetRemarks sets the "remarks" field.
func (m *ExtractionLogMutation) SetRemarks(s string) {
	m.remarks = &s
}

// Remarks returns the value of the "remarks" field in the mutation.
func (m *ExtractionLogMutation) Remarks() (r string, exists bool) {
	v := m.remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRemarks returns the old "remarks" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRemarks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemarks: %w", err)
	}
	return oldValue.Remarks, nil
}

// ClearRemarks clears the value of the "remarks" field.
func (m *ExtractionLogMutation) ClearRemarks() {
	m.remarks = nil
	m.clearedFields[extractionlog.FieldRemarks] = struct{}{}
}

// RemarksCleared returns if the "remarks" field was cleared in this mutation.
func (m *ExtractionLogMutation) RemarksCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldRemarks]
	return ok
}

// ResetRemarks resets all changes to the "remarks" field.
func (m *ExtractionLogMutation) ResetRemarks() {
	m.remarks = nil
	delete(m.clearedFields, extractionlog.FieldRemarks)
}

// SetPayload sets the "payload" field.
func (m *ExtractionLogMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ExtractionLogMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *ExtractionLogMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[extractionlog.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ExtractionLogMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ExtractionLogMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, extractionlog.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractionLogMutation builder.
func (m *ExtractionLogMutation) Where(ps ...predicate.ExtractionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionLog).
func (m *ExtractionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company_id != nil {
		fields = append(fields, extractionlog.FieldCompanyID)
	}
	if m.username != nil {
		fields = append(fields, extractionlog.FieldUsername)
	}
	if m.licence_id != nil {
		fields = append(fields, extractionlog.FieldLicenceID)
	}
	if m.requests != nil {
		fields = append(fields, extractionlog.FieldRequests)
	}
	if m.request_tokens != nil {
		fields = append(fields, extractionlog.FieldRequestTokens)
	}
	if m.response_tokens != nil {
		fields = append(fields, extractionlog.FieldResponseTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, extractionlog.FieldTotalTokens)
	}
	if m.status != nil {
		fields = append(fields, extractionlog.FieldStatus)
	}
	if m.remarks != nil {
		fields = append(fields, extractionlog.FieldRemarks)
	}
	if m.payload != nil {
		fields = append(fields, extractionlog.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, extractionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldCompanyID:
		return m.CompanyID()
	case extractionlog.FieldUsername:
		return m.Username()
	case extractionlog.FieldLicenceID:
		return m.LicenceID()
	case extractionlog.FieldRequests:
		return m.Requests()
	case extractionlog.FieldRequestTokens:
		return m.RequestTokens()
	case extractionlog.FieldResponseTokens:
		return m.ResponseTokens()
	case extractionlog.FieldTotalTokens:
		return m.TotalTokens()
	case extractionlog.FieldStatus:
		return m.Status()
	case extractionlog.FieldRemarks:
		return m.Remarks()
	case extractionlog.FieldPayload:
		return m.Payload()
	case extractionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionlog.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case extractionlog.FieldUsername:
		return m.OldUsername(ctx)
	case extractionlog.FieldLicenceID:
		return m.OldLicenceID(ctx)
	case extractionlog.FieldRequests:
		return m.OldRequests(ctx)
	case extractionlog.FieldRequestTokens:
		return m.OldRequestTokens(ctx)
	case extractionlog.FieldResponseTokens:
		return m.OldResponseTokens(ctx)
	case extractionlog.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case extractionlog.FieldStatus:
		return m.OldStatus(ctx)
	case extractionlog.FieldRemarks:
		return m.OldRemarks(ctx)
	case extractionlog.FieldPayload:
		return m.OldPayload(ctx)
	case extractionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case extractionlog.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case extractionlog.FieldLicenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenceID(v)
		return nil
	case extractionlog.FieldRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequests(v)
		return nil
	case extractionlog.FieldRequestTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestTokens(v)
		return nil
	case extractionlog.FieldResponseTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTokens(v)
		return nil
	case extractionlog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case extractionlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionlog.FieldRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemarks(v)
		return nil
	case extractionlog.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case extractionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionLogMutation) AddedFields() []string {
	var fields []string
	if m.addrequests != nil {
		fields = append(fields, extractionlog.FieldRequests)
	}
	if m.addrequest_tokens != nil {
		fields = append(fields, extractionlog.FieldRequestTokens)
	}
	if m.addresponse_tokens != nil {
		fields = append(fields, extractionlog.FieldResponseTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, extractionlog.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldRequests:
		return m.AddedRequests()
	case extractionlog.FieldRequestTokens:
		return m.AddedRequestTokens()
	case extractionlog.FieldResponseTokens:
		return m.AddedResponseTokens()
	case extractionlog.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequests(v)
		return nil
	case extractionlog.FieldRequestTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestTokens(v)
		return nil
	case extractionlog.FieldResponseTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTokens(v)
		return nil
	case extractionlog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionlog.FieldLicenceID) {
		fields = append(fields, extractionlog.FieldLicenceID)
	}
	if m.FieldCleared(extractionlog.FieldRemarks) {
		fields = append(fields, extractionlog.FieldRemarks)
	}
	if m.FieldCleared(extractionlog.FieldPayload) {
		fields = append(fields, extractionlog.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ClearField(name string) error {
	switch name {
	case extractionlog.FieldLicenceID:
		m.ClearLicenceID()
		return nil
	case extractionlog.FieldRemarks:
		m.ClearRemarks()
		return nil
	case extractionlog.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ResetField(name string) error {
	switch name {
	case extractionlog.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case extractionlog.FieldUsername:
		m.ResetUsername()
		return nil
	case extractionlog.FieldLicenceID:
		m.ResetLicenceID()
		return nil
	case extractionlog.FieldRequests:
		m.ResetRequests()
		return nil
	case extractionlog.FieldRequestTokens:
		m.ResetRequestTokens()
		return nil
	case extractionlog.FieldResponseTokens:
		m.ResetResponseTokens()
		return nil
	case extractionlog.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case extractionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionlog.FieldRemarks:
		m.ResetRemarks()
		return nil
	case extractionlog.FieldPayload:
		m.ResetPayload()
		return nil
	case extractionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionLog edge %s", name)
}
