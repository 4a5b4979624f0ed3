package entity

// ExactMapping is a previously confirmed (invoice description, supplier) →
// catalog code association. Read-only from the reconciler's perspective;
// rows are written when an operator confirms a match.
type ExactMapping struct {
	InvoiceDescription string `json:"invoice_description"`
	InvoiceSupplier    string `json:"invoice_supplier"`
	CatalogCode        string `json:"catalog_code"`
	CatalogDescription string `json:"catalog_description,omitempty"`
	CatalogSecondary   string `json:"catalog_secondary_code,omitempty"`
}
