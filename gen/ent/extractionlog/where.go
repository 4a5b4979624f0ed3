// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCompanyID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldUsername, v))
}

// LicenceID applies equality check predicate on the "licence_id" field. It's identical to LicenceIDEQ.
func LicenceID(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldLicenceID, v))
}

// Requests applies equality check predicate on the "requests" field. It's identical to RequestsEQ.
func Requests(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRequests, v))
}

// RequestTokens applies equality check predicate on the "request_tokens" field. It's identical to RequestTokensEQ.
func RequestTokens(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRequestTokens, v))
}

// ResponseTokens applies equality check predicate on the "response_tokens" field. It's identical to ResponseTokensEQ.
func ResponseTokens(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldResponseTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldTotalTokens, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldStatus, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRemarks, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldPayload, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldCompanyID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldUsername, v))
}

// LicenceIDEQ applies the EQ predicate on the "licence_id" field.
func LicenceIDEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldLicenceID, v))
}

// LicenceIDNEQ applies the NEQ predicate on the "licence_id" field.
func LicenceIDNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldLicenceID, v))
}

// LicenceIDIn applies the In predicate on the "licence_id" field.
func LicenceIDIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldLicenceID, vs...))
}

// LicenceIDNotIn applies the NotIn predicate on the "licence_id" field.
func LicenceIDNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldLicenceID, vs...))
}

// LicenceIDGT applies the GT predicate on the "licence_id" field.
func LicenceIDGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldLicenceID, v))
}

// LicenceIDGTE applies the GTE predicate on the "licence_id" field.
func LicenceIDGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldLicenceID, v))
}

// LicenceIDLT applies the LT predicate on the "licence_id" field.
func LicenceIDLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldLicenceID, v))
}

// LicenceIDLTE applies the LTE predicate on the "licence_id" field.
func LicenceIDLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldLicenceID, v))
}

// LicenceIDContains applies the Contains predicate on the "licence_id" field.
func LicenceIDContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldLicenceID, v))
}

// LicenceIDHasPrefix applies the HasPrefix predicate on the "licence_id" field.
func LicenceIDHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldLicenceID, v))
}

// LicenceIDHasSuffix applies the HasSuffix predicate on the "licence_id" field.
func LicenceIDHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldLicenceID, v))
}

// LicenceIDIsNil applies the IsNil predicate on the "licence_id" field.
func LicenceIDIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldLicenceID))
}

// LicenceIDNotNil applies the NotNil predicate on the "licence_id" field.
func LicenceIDNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldLicenceID))
}

// LicenceIDEqualFold applies the EqualFold predicate on the "licence_id" field.
func LicenceIDEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldLicenceID, v))
}

// LicenceIDContainsFold applies the ContainsFold predicate on the "licence_id" field.
func LicenceIDContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldLicenceID, v))
}

// RequestsEQ applies the EQ predicate on the "requests" field.
func RequestsEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRequests, v))
}

// RequestsNEQ applies the NEQ predicate on the "requests" field.
func RequestsNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldRequests, v))
}

// RequestsIn applies the In predicate on the "requests" field.
func RequestsIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldRequests, vs...))
}

// RequestsNotIn applies the NotIn predicate on the "requests" field.
func RequestsNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldRequests, vs...))
}

// RequestsGT applies the GT predicate on the "requests" field.
func RequestsGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldRequests, v))
}

// RequestsGTE applies the GTE predicate on the "requests" field.
func RequestsGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldRequests, v))
}

// RequestsLT applies the LT predicate on the "requests" field.
func RequestsLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldRequests, v))
}

// RequestsLTE applies the LTE predicate on the "requests" field.
func RequestsLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldRequests, v))
}

// RequestTokensEQ applies the EQ predicate on the "request_tokens" field.
func RequestTokensEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRequestTokens, v))
}

// RequestTokensNEQ applies the NEQ predicate on the "request_tokens" field.
func RequestTokensNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldRequestTokens, v))
}

// RequestTokensIn applies the In predicate on the "request_tokens" field.
func RequestTokensIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldRequestTokens, vs...))
}

// RequestTokensNotIn applies the NotIn predicate on the "request_tokens" field.
func RequestTokensNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldRequestTokens, vs...))
}

// RequestTokensGT applies the GT predicate on the "request_tokens" field.
func RequestTokensGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldRequestTokens, v))
}

// RequestTokensGTE applies the GTE predicate on the "request_tokens" field.
func RequestTokensGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldRequestTokens, v))
}

// RequestTokensLT applies the LT predicate on the "request_tokens" field.
func RequestTokensLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldRequestTokens, v))
}

// RequestTokensLTE applies the LTE predicate on the "request_tokens" field.
func RequestTokensLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldRequestTokens, v))
}

// ResponseTokensEQ applies the EQ predicate on the "response_tokens" field.
func ResponseTokensEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldResponseTokens, v))
}

// ResponseTokensNEQ applies the NEQ predicate on the "response_tokens" field.
func ResponseTokensNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldResponseTokens, v))
}

// ResponseTokensIn applies the In predicate on the "response_tokens" field.
func ResponseTokensIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldResponseTokens, vs...))
}

// ResponseTokensNotIn applies the NotIn predicate on the "response_tokens" field.
func ResponseTokensNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldResponseTokens, vs...))
}

// ResponseTokensGT applies the GT predicate on the "response_tokens" field.
func ResponseTokensGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldResponseTokens, v))
}

// ResponseTokensGTE applies the GTE predicate on the "response_tokens" field.
func ResponseTokensGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldResponseTokens, v))
}

// ResponseTokensLT applies the LT predicate on the "response_tokens" field.
func ResponseTokensLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldResponseTokens, v))
}

// ResponseTokensLTE applies the LTE predicate on the "response_tokens" field.
func ResponseTokensLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldResponseTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldTotalTokens, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldStatus, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksIsNil applies the IsNil predicate on the "remarks" field.
func RemarksIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldRemarks))
}

// RemarksNotNil applies the NotNil predicate on the "remarks" field.
func RemarksNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldRemarks))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldRemarks, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldPayload, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.NotPredicates(p))
}
