// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionlog type in the database.
	Label = "extraction_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldLicenceID holds the string denoting the licence_id field in the database.
	FieldLicenceID = "licence_id"
	// FieldRequests holds the string denoting the requests field in the database.
	FieldRequests = "requests"
	// FieldRequestTokens holds the string denoting the request_tokens field in the database.
	FieldRequestTokens = "request_tokens"
	// FieldResponseTokens holds the string denoting the response_tokens field in the database.
	FieldResponseTokens = "response_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRemarks holds the string denoting the remarks field in the database.
	FieldRemarks = "remarks"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractionlog in the database.
	Table = "extraction_logs"
)

// Columns holds all SQL columns for extractionlog fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldUsername,
	FieldLicenceID,
	FieldRequests,
	FieldRequestTokens,
	FieldResponseTokens,
	FieldTotalTokens,
	FieldStatus,
	FieldRemarks,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	CompanyIDValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// LicenceIDValidator is a validator for the "licence_id" field. It is called by the builders before save.
	LicenceIDValidator func(string) error
	// DefaultRequests holds the default value on creation for the "requests" field.
	DefaultRequests int
	// DefaultRequestTokens holds the default value on creation for the "request_tokens" field.
	DefaultRequestTokens int
	// DefaultResponseTokens holds the default value on creation for the "response_tokens" field.
	DefaultResponseTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByLicenceID orders the results by the licence_id field.
func ByLicenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenceID, opts...).ToFunc()
}

// ByRequests orders the results by the requests field.
func ByRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequests, opts...).ToFunc()
}

// ByRequestTokens orders the results by the request_tokens field.
func ByRequestTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestTokens, opts...).ToFunc()
}

// ByResponseTokens orders the results by the response_tokens field.
func ByResponseTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRemarks orders the results by the remarks field.
func ByRemarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemarks, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
