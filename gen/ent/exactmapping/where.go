// Code generated by ent, DO NOT EDIT.

package exactmapping

import (
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldID, id))
}

// InvoiceDescription applies equality check predicate on the "invoice_description" field. It's identical to InvoiceDescriptionEQ.
func InvoiceDescription(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldInvoiceDescription, v))
}

// InvoiceSupplier applies equality check predicate on the "invoice_supplier" field. It's identical to InvoiceSupplierEQ.
func InvoiceSupplier(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldInvoiceSupplier, v))
}

// CatalogCode applies equality check predicate on the "catalog_code" field. It's identical to CatalogCodeEQ.
func CatalogCode(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogCode, v))
}

// CatalogDescription applies equality check predicate on the "catalog_description" field. It's identical to CatalogDescriptionEQ.
func CatalogDescription(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogDescription, v))
}

// CatalogSecondaryCode applies equality check predicate on the "catalog_secondary_code" field. It's identical to CatalogSecondaryCodeEQ.
func CatalogSecondaryCode(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogSecondaryCode, v))
}

// InvoiceDescriptionEQ applies the EQ predicate on the "invoice_description" field.
func InvoiceDescriptionEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldInvoiceDescription, v))
}

// InvoiceDescriptionNEQ applies the NEQ predicate on the "invoice_description" field.
func InvoiceDescriptionNEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldInvoiceDescription, v))
}

// InvoiceDescriptionIn applies the In predicate on the "invoice_description" field.
func InvoiceDescriptionIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldInvoiceDescription, vs...))
}

// InvoiceDescriptionNotIn applies the NotIn predicate on the "invoice_description" field.
func InvoiceDescriptionNotIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldInvoiceDescription, vs...))
}

// InvoiceDescriptionGT applies the GT predicate on the "invoice_description" field.
func InvoiceDescriptionGT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldInvoiceDescription, v))
}

// InvoiceDescriptionGTE applies the GTE predicate on the "invoice_description" field.
func InvoiceDescriptionGTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldInvoiceDescription, v))
}

// InvoiceDescriptionLT applies the LT predicate on the "invoice_description" field.
func InvoiceDescriptionLT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldInvoiceDescription, v))
}

// InvoiceDescriptionLTE applies the LTE predicate on the "invoice_description" field.
func InvoiceDescriptionLTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldInvoiceDescription, v))
}

// InvoiceDescriptionContains applies the Contains predicate on the "invoice_description" field.
func InvoiceDescriptionContains(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContains(FieldInvoiceDescription, v))
}

// InvoiceDescriptionHasPrefix applies the HasPrefix predicate on the "invoice_description" field.
func InvoiceDescriptionHasPrefix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasPrefix(FieldInvoiceDescription, v))
}

// InvoiceDescriptionHasSuffix applies the HasSuffix predicate on the "invoice_description" field.
func InvoiceDescriptionHasSuffix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasSuffix(FieldInvoiceDescription, v))
}

// InvoiceDescriptionEqualFold applies the EqualFold predicate on the "invoice_description" field.
func InvoiceDescriptionEqualFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEqualFold(FieldInvoiceDescription, v))
}

// InvoiceDescriptionContainsFold applies the ContainsFold predicate on the "invoice_description" field.
func InvoiceDescriptionContainsFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContainsFold(FieldInvoiceDescription, v))
}

// InvoiceSupplierEQ applies the EQ predicate on the "invoice_supplier" field.
func InvoiceSupplierEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldInvoiceSupplier, v))
}

// InvoiceSupplierNEQ applies the NEQ predicate on the "invoice_supplier" field.
func InvoiceSupplierNEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldInvoiceSupplier, v))
}

// InvoiceSupplierIn applies the In predicate on the "invoice_supplier" field.
func InvoiceSupplierIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldInvoiceSupplier, vs...))
}

// InvoiceSupplierNotIn applies the NotIn predicate on the "invoice_supplier" field.
func InvoiceSupplierNotIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldInvoiceSupplier, vs...))
}

// InvoiceSupplierGT applies the GT predicate on the "invoice_supplier" field.
func InvoiceSupplierGT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldInvoiceSupplier, v))
}

// InvoiceSupplierGTE applies the GTE predicate on the "invoice_supplier" field.
func InvoiceSupplierGTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldInvoiceSupplier, v))
}

// InvoiceSupplierLT applies the LT predicate on the "invoice_supplier" field.
func InvoiceSupplierLT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldInvoiceSupplier, v))
}

// InvoiceSupplierLTE applies the LTE predicate on the "invoice_supplier" field.
func InvoiceSupplierLTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldInvoiceSupplier, v))
}

// InvoiceSupplierContains applies the Contains predicate on the "invoice_supplier" field.
func InvoiceSupplierContains(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContains(FieldInvoiceSupplier, v))
}

// InvoiceSupplierHasPrefix applies the HasPrefix predicate on the "invoice_supplier" field.
func InvoiceSupplierHasPrefix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasPrefix(FieldInvoiceSupplier, v))
}

// InvoiceSupplierHasSuffix applies the HasSuffix predicate on the "invoice_supplier" field.
func InvoiceSupplierHasSuffix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasSuffix(FieldInvoiceSupplier, v))
}

// InvoiceSupplierEqualFold applies the EqualFold predicate on the "invoice_supplier" field.
func InvoiceSupplierEqualFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEqualFold(FieldInvoiceSupplier, v))
}

// InvoiceSupplierContainsFold applies the ContainsFold predicate on the "invoice_supplier" field.
func InvoiceSupplierContainsFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContainsFold(FieldInvoiceSupplier, v))
}

// CatalogCodeEQ applies the EQ predicate on the "catalog_code" field.
func CatalogCodeEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogCode, v))
}

// CatalogCodeNEQ applies the NEQ predicate on the "catalog_code" field.
func CatalogCodeNEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldCatalogCode, v))
}

// CatalogCodeIn applies the In predicate on the "catalog_code" field.
func CatalogCodeIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldCatalogCode, vs...))
}

// CatalogCodeNotIn applies the NotIn predicate on the "catalog_code" field.
func CatalogCodeNotIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldCatalogCode, vs...))
}

// CatalogCodeGT applies the GT predicate on the "catalog_code" field.
func CatalogCodeGT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldCatalogCode, v))
}

// CatalogCodeGTE applies the GTE predicate on the "catalog_code" field.
func CatalogCodeGTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldCatalogCode, v))
}

// CatalogCodeLT applies the LT predicate on the "catalog_code" field.
func CatalogCodeLT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldCatalogCode, v))
}

// CatalogCodeLTE applies the LTE predicate on the "catalog_code" field.
func CatalogCodeLTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldCatalogCode, v))
}

// CatalogCodeContains applies the Contains predicate on the "catalog_code" field.
func CatalogCodeContains(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContains(FieldCatalogCode, v))
}

// CatalogCodeHasPrefix applies the HasPrefix predicate on the "catalog_code" field.
func CatalogCodeHasPrefix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasPrefix(FieldCatalogCode, v))
}

// CatalogCodeHasSuffix applies the HasSuffix predicate on the "catalog_code" field.
func CatalogCodeHasSuffix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasSuffix(FieldCatalogCode, v))
}

// CatalogCodeEqualFold applies the EqualFold predicate on the "catalog_code" field.
func CatalogCodeEqualFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEqualFold(FieldCatalogCode, v))
}

// CatalogCodeContainsFold applies the ContainsFold predicate on the "catalog_code" field.
func CatalogCodeContainsFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContainsFold(FieldCatalogCode, v))
}

// CatalogDescriptionEQ applies the EQ predicate on the "catalog_description" field.
func CatalogDescriptionEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogDescription, v))
}

// CatalogDescriptionNEQ applies the NEQ predicate on the "catalog_description" field.
func CatalogDescriptionNEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldCatalogDescription, v))
}

// CatalogDescriptionIn applies the In predicate on the "catalog_description" field.
func CatalogDescriptionIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldCatalogDescription, vs...))
}

// CatalogDescriptionNotIn applies the NotIn predicate on the "catalog_description" field.
func CatalogDescriptionNotIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldCatalogDescription, vs...))
}

// CatalogDescriptionGT applies the GT predicate on the "catalog_description" field.
func CatalogDescriptionGT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldCatalogDescription, v))
}

// CatalogDescriptionGTE applies the GTE predicate on the "catalog_description" field.
func CatalogDescriptionGTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldCatalogDescription, v))
}

// CatalogDescriptionLT applies the LT predicate on the "catalog_description" field.
func CatalogDescriptionLT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldCatalogDescription, v))
}

// CatalogDescriptionLTE applies the LTE predicate on the "catalog_description" field.
func CatalogDescriptionLTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldCatalogDescription, v))
}

// CatalogDescriptionContains applies the Contains predicate on the "catalog_description" field.
func CatalogDescriptionContains(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContains(FieldCatalogDescription, v))
}

// CatalogDescriptionHasPrefix applies the HasPrefix predicate on the "catalog_description" field.
func CatalogDescriptionHasPrefix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasPrefix(FieldCatalogDescription, v))
}

// CatalogDescriptionHasSuffix applies the HasSuffix predicate on the "catalog_description" field.
func CatalogDescriptionHasSuffix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasSuffix(FieldCatalogDescription, v))
}

// CatalogDescriptionIsNil applies the IsNil predicate on the "catalog_description" field.
func CatalogDescriptionIsNil() predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIsNull(FieldCatalogDescription))
}

// CatalogDescriptionNotNil applies the NotNil predicate on the "catalog_description" field.
func CatalogDescriptionNotNil() predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotNull(FieldCatalogDescription))
}

// CatalogDescriptionEqualFold applies the EqualFold predicate on the "catalog_description" field.
func CatalogDescriptionEqualFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEqualFold(FieldCatalogDescription, v))
}

// CatalogDescriptionContainsFold applies the ContainsFold predicate on the "catalog_description" field.
func CatalogDescriptionContainsFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContainsFold(FieldCatalogDescription, v))
}

// CatalogSecondaryCodeEQ applies the EQ predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEQ(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeNEQ applies the NEQ predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeNEQ(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNEQ(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeIn applies the In predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIn(FieldCatalogSecondaryCode, vs...))
}

// CatalogSecondaryCodeNotIn applies the NotIn predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeNotIn(vs ...string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotIn(FieldCatalogSecondaryCode, vs...))
}

// CatalogSecondaryCodeGT applies the GT predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeGT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGT(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeGTE applies the GTE predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeGTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldGTE(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeLT applies the LT predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeLT(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLT(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeLTE applies the LTE predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeLTE(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldLTE(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeContains applies the Contains predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeContains(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContains(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeHasPrefix applies the HasPrefix predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeHasPrefix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasPrefix(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeHasSuffix applies the HasSuffix predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeHasSuffix(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldHasSuffix(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeIsNil applies the IsNil predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeIsNil() predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldIsNull(FieldCatalogSecondaryCode))
}

// CatalogSecondaryCodeNotNil applies the NotNil predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeNotNil() predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldNotNull(FieldCatalogSecondaryCode))
}

// CatalogSecondaryCodeEqualFold applies the EqualFold predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeEqualFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldEqualFold(FieldCatalogSecondaryCode, v))
}

// CatalogSecondaryCodeContainsFold applies the ContainsFold predicate on the "catalog_secondary_code" field.
func CatalogSecondaryCodeContainsFold(v string) predicate.ExactMapping {
	return predicate.ExactMapping(sql.FieldContainsFold(FieldCatalogSecondaryCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExactMapping) predicate.ExactMapping {
	return predicate.ExactMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExactMapping) predicate.ExactMapping {
	return predicate.ExactMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExactMapping) predicate.ExactMapping {
	return predicate.ExactMapping(sql.NotPredicates(p))
}
