// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/invoice-reconciler/db/ent/schema"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/catalogitem"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/extractionlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogitemFields := schema.CatalogItem{}.Fields()
	_ = catalogitemFields
	// catalogitemDescCode is the schema descriptor for code field.
	catalogitemDescCode := catalogitemFields[0].Descriptor()
	// catalogitem.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	catalogitem.CodeValidator = func() func(string) error {
		validators := catalogitemDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// catalogitemDescSecondaryCode is the schema descriptor for secondary_code field.
	catalogitemDescSecondaryCode := catalogitemFields[2].Descriptor()
	// catalogitem.SecondaryCodeValidator is a validator for the "secondary_code" field. It is called by the builders before save.
	catalogitem.SecondaryCodeValidator = catalogitemDescSecondaryCode.Validators[0].(func(string) error)
	// catalogitemDescBaseUnit is the schema descriptor for base_unit field.
	catalogitemDescBaseUnit := catalogitemFields[3].Descriptor()
	// catalogitem.BaseUnitValidator is a validator for the "base_unit" field. It is called by the builders before save.
	catalogitem.BaseUnitValidator = catalogitemDescBaseUnit.Validators[0].(func(string) error)
	// catalogitemDescAltUnit is the schema descriptor for alt_unit field.
	catalogitemDescAltUnit := catalogitemFields[5].Descriptor()
	// catalogitem.AltUnitValidator is a validator for the "alt_unit" field. It is called by the builders before save.
	catalogitem.AltUnitValidator = catalogitemDescAltUnit.Validators[0].(func(string) error)
	// catalogitemDescTaxCode is the schema descriptor for tax_code field.
	catalogitemDescTaxCode := catalogitemFields[6].Descriptor()
	// catalogitem.TaxCodeValidator is a validator for the "tax_code" field. It is called by the builders before save.
	catalogitem.TaxCodeValidator = catalogitemDescTaxCode.Validators[0].(func(string) error)
	exactmappingFields := schema.ExactMapping{}.Fields()
	_ = exactmappingFields
	// exactmappingDescInvoiceDescription is the schema descriptor for invoice_description field.
	exactmappingDescInvoiceDescription := exactmappingFields[0].Descriptor()
	// exactmapping.InvoiceDescriptionValidator is a validator for the "invoice_description" field. It is called by the builders before save.
	exactmapping.InvoiceDescriptionValidator = func() func(string) error {
		validators := exactmappingDescInvoiceDescription.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(invoice_description string) error {
			for _, fn := range fns {
				if err := fn(invoice_description); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// exactmappingDescInvoiceSupplier is the schema descriptor for invoice_supplier field.
	exactmappingDescInvoiceSupplier := exactmappingFields[1].Descriptor()
	// exactmapping.InvoiceSupplierValidator is a validator for the "invoice_supplier" field. It is called by the builders before save.
	exactmapping.InvoiceSupplierValidator = func() func(string) error {
		validators := exactmappingDescInvoiceSupplier.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(invoice_supplier string) error {
			for _, fn := range fns {
				if err := fn(invoice_supplier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// exactmappingDescCatalogCode is the schema descriptor for catalog_code field.
	exactmappingDescCatalogCode := exactmappingFields[2].Descriptor()
	// exactmapping.CatalogCodeValidator is a validator for the "catalog_code" field. It is called by the builders before save.
	exactmapping.CatalogCodeValidator = func() func(string) error {
		validators := exactmappingDescCatalogCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(catalog_code string) error {
			for _, fn := range fns {
				if err := fn(catalog_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// exactmappingDescCatalogSecondaryCode is the schema descriptor for catalog_secondary_code field.
	exactmappingDescCatalogSecondaryCode := exactmappingFields[4].Descriptor()
	// exactmapping.CatalogSecondaryCodeValidator is a validator for the "catalog_secondary_code" field. It is called by the builders before save.
	exactmapping.CatalogSecondaryCodeValidator = exactmappingDescCatalogSecondaryCode.Validators[0].(func(string) error)
	extractionlogFields := schema.ExtractionLog{}.Fields()
	_ = extractionlogFields
	// extractionlogDescCompanyID is the schema descriptor for company_id field.
	extractionlogDescCompanyID := extractionlogFields[1].Descriptor()
	// extractionlog.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	extractionlog.CompanyIDValidator = func() func(string) error {
		validators := extractionlogDescCompanyID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(company_id string) error {
			for _, fn := range fns {
				if err := fn(company_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionlogDescUsername is the schema descriptor for username field.
	extractionlogDescUsername := extractionlogFields[2].Descriptor()
	// extractionlog.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	extractionlog.UsernameValidator = func() func(string) error {
		validators := extractionlogDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionlogDescLicenceID is the schema descriptor for licence_id field.
	extractionlogDescLicenceID := extractionlogFields[3].Descriptor()
	// extractionlog.LicenceIDValidator is a validator for the "licence_id" field. It is called by the builders before save.
	extractionlog.LicenceIDValidator = extractionlogDescLicenceID.Validators[0].(func(string) error)
	// extractionlogDescRequests is the schema descriptor for requests field.
	extractionlogDescRequests := extractionlogFields[4].Descriptor()
	// extractionlog.DefaultRequests holds the default value on creation for the requests field.
	extractionlog.DefaultRequests = extractionlogDescRequests.Default.(int)
	// extractionlogDescRequestTokens is the schema descriptor for request_tokens field.
	extractionlogDescRequestTokens := extractionlogFields[5].Descriptor()
	// extractionlog.DefaultRequestTokens holds the default value on creation for the request_tokens field.
	extractionlog.DefaultRequestTokens = extractionlogDescRequestTokens.Default.(int)
	// extractionlogDescResponseTokens is the schema descriptor for response_tokens field.
	extractionlogDescResponseTokens := extractionlogFields[6].Descriptor()
	// extractionlog.DefaultResponseTokens holds the default value on creation for the response_tokens field.
	extractionlog.DefaultResponseTokens = extractionlogDescResponseTokens.Default.(int)
	// extractionlogDescTotalTokens is the schema descriptor for total_tokens field.
	extractionlogDescTotalTokens := extractionlogFields[7].Descriptor()
	// extractionlog.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	extractionlog.DefaultTotalTokens = extractionlogDescTotalTokens.Default.(int)
	// extractionlogDescStatus is the schema descriptor for status field.
	extractionlogDescStatus := extractionlogFields[8].Descriptor()
	// extractionlog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionlog.StatusValidator = func() func(string) error {
		validators := extractionlogDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionlogDescCreatedAt is the schema descriptor for created_at field.
	extractionlogDescCreatedAt := extractionlogFields[11].Descriptor()
	// extractionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionlog.DefaultCreatedAt = extractionlogDescCreatedAt.Default.(func() time.Time)
	// extractionlogDescID is the schema descriptor for id field.
	extractionlogDescID := extractionlogFields[0].Descriptor()
	// extractionlog.DefaultID holds the default value on creation for the id field.
	extractionlog.DefaultID = extractionlogDescID.Default.(func() uuid.UUID)
}
