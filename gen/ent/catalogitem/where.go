// Code generated by ent, DO NOT EDIT.

package catalogitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldDescription, v))
}

// SecondaryCode applies equality check predicate on the "secondary_code" field. It's identical to SecondaryCodeEQ.
func SecondaryCode(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldSecondaryCode, v))
}

// BaseUnit applies equality check predicate on the "base_unit" field. It's identical to BaseUnitEQ.
func BaseUnit(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldBaseUnit, v))
}

// ConversionFactor applies equality check predicate on the "conversion_factor" field. It's identical to ConversionFactorEQ.
func ConversionFactor(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldConversionFactor, v))
}

// AltUnit applies equality check predicate on the "alt_unit" field. It's identical to AltUnitEQ.
func AltUnit(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldAltUnit, v))
}

// TaxCode applies equality check predicate on the "tax_code" field. It's identical to TaxCodeEQ.
func TaxCode(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldTaxCode, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldDescription, v))
}

// SecondaryCodeEQ applies the EQ predicate on the "secondary_code" field.
func SecondaryCodeEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldSecondaryCode, v))
}

// SecondaryCodeNEQ applies the NEQ predicate on the "secondary_code" field.
func SecondaryCodeNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldSecondaryCode, v))
}

// SecondaryCodeIn applies the In predicate on the "secondary_code" field.
func SecondaryCodeIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldSecondaryCode, vs...))
}

// SecondaryCodeNotIn applies the NotIn predicate on the "secondary_code" field.
func SecondaryCodeNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldSecondaryCode, vs...))
}

// SecondaryCodeGT applies the GT predicate on the "secondary_code" field.
func SecondaryCodeGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldSecondaryCode, v))
}

// SecondaryCodeGTE applies the GTE predicate on the "secondary_code" field.
func SecondaryCodeGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldSecondaryCode, v))
}

// SecondaryCodeLT applies the LT predicate on the "secondary_code" field.
func SecondaryCodeLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldSecondaryCode, v))
}

// SecondaryCodeLTE applies the LTE predicate on the "secondary_code" field.
func SecondaryCodeLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldSecondaryCode, v))
}

// SecondaryCodeContains applies the Contains predicate on the "secondary_code" field.
func SecondaryCodeContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldSecondaryCode, v))
}

// SecondaryCodeHasPrefix applies the HasPrefix predicate on the "secondary_code" field.
func SecondaryCodeHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldSecondaryCode, v))
}

// SecondaryCodeHasSuffix applies the HasSuffix predicate on the "secondary_code" field.
func SecondaryCodeHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldSecondaryCode, v))
}

// SecondaryCodeIsNil applies the IsNil predicate on the "secondary_code" field.
func SecondaryCodeIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldSecondaryCode))
}

// SecondaryCodeNotNil applies the NotNil predicate on the "secondary_code" field.
func SecondaryCodeNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldSecondaryCode))
}

// SecondaryCodeEqualFold applies the EqualFold predicate on the "secondary_code" field.
func SecondaryCodeEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldSecondaryCode, v))
}

// SecondaryCodeContainsFold applies the ContainsFold predicate on the "secondary_code" field.
func SecondaryCodeContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldSecondaryCode, v))
}

// BaseUnitEQ applies the EQ predicate on the "base_unit" field.
func BaseUnitEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldBaseUnit, v))
}

// BaseUnitNEQ applies the NEQ predicate on the "base_unit" field.
func BaseUnitNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldBaseUnit, v))
}

// BaseUnitIn applies the In predicate on the "base_unit" field.
func BaseUnitIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldBaseUnit, vs...))
}

// BaseUnitNotIn applies the NotIn predicate on the "base_unit" field.
func BaseUnitNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldBaseUnit, vs...))
}

// BaseUnitGT applies the GT predicate on the "base_unit" field.
func BaseUnitGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldBaseUnit, v))
}

// BaseUnitGTE applies the GTE predicate on the "base_unit" field.
func BaseUnitGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldBaseUnit, v))
}

// BaseUnitLT applies the LT predicate on the "base_unit" field.
func BaseUnitLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldBaseUnit, v))
}

// BaseUnitLTE applies the LTE predicate on the "base_unit" field.
func BaseUnitLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldBaseUnit, v))
}

// BaseUnitContains applies the Contains predicate on the "base_unit" field.
func BaseUnitContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldBaseUnit, v))
}

// BaseUnitHasPrefix applies the HasPrefix predicate on the "base_unit" field.
func BaseUnitHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldBaseUnit, v))
}

// BaseUnitHasSuffix applies the HasSuffix predicate on the "base_unit" field.
func BaseUnitHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldBaseUnit, v))
}

// BaseUnitIsNil applies the IsNil predicate on the "base_unit" field.
func BaseUnitIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldBaseUnit))
}

// BaseUnitNotNil applies the NotNil predicate on the "base_unit" field.
func BaseUnitNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldBaseUnit))
}

// BaseUnitEqualFold applies the EqualFold predicate on the "base_unit" field.
func BaseUnitEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldBaseUnit, v))
}

// BaseUnitContainsFold applies the ContainsFold predicate on the "base_unit" field.
func BaseUnitContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldBaseUnit, v))
}

// ConversionFactorEQ applies the EQ predicate on the "conversion_factor" field.
func ConversionFactorEQ(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldConversionFactor, v))
}

// ConversionFactorNEQ applies the NEQ predicate on the "conversion_factor" field.
func ConversionFactorNEQ(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldConversionFactor, v))
}

// ConversionFactorIn applies the In predicate on the "conversion_factor" field.
func ConversionFactorIn(vs ...float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldConversionFactor, vs...))
}

// ConversionFactorNotIn applies the NotIn predicate on the "conversion_factor" field.
func ConversionFactorNotIn(vs ...float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldConversionFactor, vs...))
}

// ConversionFactorGT applies the GT predicate on the "conversion_factor" field.
func ConversionFactorGT(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldConversionFactor, v))
}

// ConversionFactorGTE applies the GTE predicate on the "conversion_factor" field.
func ConversionFactorGTE(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldConversionFactor, v))
}

// ConversionFactorLT applies the LT predicate on the "conversion_factor" field.
func ConversionFactorLT(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldConversionFactor, v))
}

// ConversionFactorLTE applies the LTE predicate on the "conversion_factor" field.
func ConversionFactorLTE(v float64) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldConversionFactor, v))
}

// ConversionFactorIsNil applies the IsNil predicate on the "conversion_factor" field.
func ConversionFactorIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldConversionFactor))
}

// ConversionFactorNotNil applies the NotNil predicate on the "conversion_factor" field.
func ConversionFactorNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldConversionFactor))
}

// AltUnitEQ applies the EQ predicate on the "alt_unit" field.
func AltUnitEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldAltUnit, v))
}

// AltUnitNEQ applies the NEQ predicate on the "alt_unit" field.
func AltUnitNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldAltUnit, v))
}

// AltUnitIn applies the In predicate on the "alt_unit" field.
func AltUnitIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldAltUnit, vs...))
}

// AltUnitNotIn applies the NotIn predicate on the "alt_unit" field.
func AltUnitNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldAltUnit, vs...))
}

// AltUnitGT applies the GT predicate on the "alt_unit" field.
func AltUnitGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldAltUnit, v))
}

// AltUnitGTE applies the GTE predicate on the "alt_unit" field.
func AltUnitGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldAltUnit, v))
}

// AltUnitLT applies the LT predicate on the "alt_unit" field.
func AltUnitLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldAltUnit, v))
}

// AltUnitLTE applies the LTE predicate on the "alt_unit" field.
func AltUnitLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldAltUnit, v))
}

// AltUnitContains applies the Contains predicate on the "alt_unit" field.
func AltUnitContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldAltUnit, v))
}

// AltUnitHasPrefix applies the HasPrefix predicate on the "alt_unit" field.
func AltUnitHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldAltUnit, v))
}

// AltUnitHasSuffix applies the HasSuffix predicate on the "alt_unit" field.
func AltUnitHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldAltUnit, v))
}

// AltUnitIsNil applies the IsNil predicate on the "alt_unit" field.
func AltUnitIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldAltUnit))
}

// AltUnitNotNil applies the NotNil predicate on the "alt_unit" field.
func AltUnitNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldAltUnit))
}

// AltUnitEqualFold applies the EqualFold predicate on the "alt_unit" field.
func AltUnitEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldAltUnit, v))
}

// AltUnitContainsFold applies the ContainsFold predicate on the "alt_unit" field.
func AltUnitContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldAltUnit, v))
}

// TaxCodeEQ applies the EQ predicate on the "tax_code" field.
func TaxCodeEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEQ(FieldTaxCode, v))
}

// TaxCodeNEQ applies the NEQ predicate on the "tax_code" field.
func TaxCodeNEQ(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNEQ(FieldTaxCode, v))
}

// TaxCodeIn applies the In predicate on the "tax_code" field.
func TaxCodeIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIn(FieldTaxCode, vs...))
}

// TaxCodeNotIn applies the NotIn predicate on the "tax_code" field.
func TaxCodeNotIn(vs ...string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotIn(FieldTaxCode, vs...))
}

// TaxCodeGT applies the GT predicate on the "tax_code" field.
func TaxCodeGT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGT(FieldTaxCode, v))
}

// TaxCodeGTE applies the GTE predicate on the "tax_code" field.
func TaxCodeGTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldGTE(FieldTaxCode, v))
}

// TaxCodeLT applies the LT predicate on the "tax_code" field.
func TaxCodeLT(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLT(FieldTaxCode, v))
}

// TaxCodeLTE applies the LTE predicate on the "tax_code" field.
func TaxCodeLTE(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldLTE(FieldTaxCode, v))
}

// TaxCodeContains applies the Contains predicate on the "tax_code" field.
func TaxCodeContains(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContains(FieldTaxCode, v))
}

// TaxCodeHasPrefix applies the HasPrefix predicate on the "tax_code" field.
func TaxCodeHasPrefix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasPrefix(FieldTaxCode, v))
}

// TaxCodeHasSuffix applies the HasSuffix predicate on the "tax_code" field.
func TaxCodeHasSuffix(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldHasSuffix(FieldTaxCode, v))
}

// TaxCodeIsNil applies the IsNil predicate on the "tax_code" field.
func TaxCodeIsNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldIsNull(FieldTaxCode))
}

// TaxCodeNotNil applies the NotNil predicate on the "tax_code" field.
func TaxCodeNotNil() predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldNotNull(FieldTaxCode))
}

// TaxCodeEqualFold applies the EqualFold predicate on the "tax_code" field.
func TaxCodeEqualFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldEqualFold(FieldTaxCode, v))
}

// TaxCodeContainsFold applies the ContainsFold predicate on the "tax_code" field.
func TaxCodeContainsFold(v string) predicate.CatalogItem {
	return predicate.CatalogItem(sql.FieldContainsFold(FieldTaxCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogItem) predicate.CatalogItem {
	return predicate.CatalogItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogItem) predicate.CatalogItem {
	return predicate.CatalogItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogItem) predicate.CatalogItem {
	return predicate.CatalogItem(sql.NotPredicates(p))
}
