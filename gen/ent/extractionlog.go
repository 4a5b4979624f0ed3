// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
)

// ExtractionLog is the model entity for the ExtractionLog schema.
type ExtractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// LicenceID holds the value of the "licence_id" field.
	LicenceID string `json:"licence_id,omitempty"`
	// Requests holds the value of the "requests" field.
	Requests int `json:"requests,omitempty"`
	// RequestTokens holds the value of the "request_tokens" field.
	RequestTokens int `json:"request_tokens,omitempty"`
	// ResponseTokens holds the value of the "response_tokens" field.
	ResponseTokens int `json:"response_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks string `json:"remarks,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload []byte `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldPayload:
			values[i] = new([]byte)
		case extractionlog.FieldRequests, extractionlog.FieldRequestTokens, extractionlog.FieldResponseTokens, extractionlog.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case extractionlog.FieldCompanyID, extractionlog.FieldUsername, extractionlog.FieldLicenceID, extractionlog.FieldStatus, extractionlog.FieldRemarks:
			values[i] = new(sql.NullString)
		case extractionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionlog.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionLog fields.
func (_m *ExtractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionlog.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case extractionlog.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case extractionlog.FieldLicenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field licence_id", values[i])
			} else if value.Valid {
				_m.LicenceID = value.String
			}
		case extractionlog.FieldRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requests", values[i])
			} else if value.Valid {
				_m.Requests = int(value.Int64)
			}
		case extractionlog.FieldRequestTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_tokens", values[i])
			} else if value.Valid {
				_m.RequestTokens = int(value.Int64)
			}
		case extractionlog.FieldResponseTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_tokens", values[i])
			} else if value.Valid {
				_m.ResponseTokens = int(value.Int64)
			}
		case extractionlog.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case extractionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionlog.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = value.String
			}
		case extractionlog.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case extractionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionLog.
// Note that you need to call ExtractionLog.Unwrap() before calling this method if this ExtractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionLog) Update() *ExtractionLogUpdateOne {
	return NewExtractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionLog) Unwrap() *ExtractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("licence_id=")
	builder.WriteString(_m.LicenceID)
	builder.WriteString(", ")
	builder.WriteString("requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requests))
	builder.WriteString(", ")
	builder.WriteString("request_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestTokens))
	builder.WriteString(", ")
	builder.WriteString("response_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("remarks=")
	builder.WriteString(_m.Remarks)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionLogs is a parsable slice of ExtractionLog.
type ExtractionLogs []*ExtractionLog
