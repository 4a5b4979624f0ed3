// Package llm extracts structured invoice data from an image via a
// vision-language model and shapes the model's parallel per-product arrays
// into line items.
package llm

import "context"

// InvoiceFields is the normalized shape we want from the model: invoice
// header fields plus parallel arrays, one slot per product row. Array order
// must be consistent across fields; ToLineItems aligns any ragged edges.
type InvoiceFields struct {
	OrderNo         string `json:"order_no,omitempty"`
	InvoiceNo       string `json:"invoice_no,omitempty"`
	DeliveryNote    string `json:"delivery_note,omitempty"`
	VehicleNo       string `json:"vehicle_no,omitempty"`
	Transporter     string `json:"transporter,omitempty"`
	DealerName      string `json:"dealer_name,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"`
	TransactionDate string `json:"transaction_date,omitempty"` // YYYY-MM-DD
	DueDate         string `json:"due_date,omitempty"`         // YYYY-MM-DD
	InvoiceDate     string `json:"invoice_date,omitempty"`     // YYYY-MM-DD

	SKU      []string  `json:"sku"`
	SKUCode  []string  `json:"sku_code"`
	Quantity []int     `json:"quantity"`
	Shortage []int     `json:"shortage"`
	Breakage []int     `json:"breakage"`
	Leakage  []int     `json:"leakage"`
	Batch    []string  `json:"batch"`
	SerialNo []string  `json:"sno"`
	Rate     []float64 `json:"rate"`
	Discount []float64 `json:"discount"`
	MRP      []float64 `json:"mrp"`
	VAT      []float64 `json:"vat"`
	HSCode   []string  `json:"hscode"`
	AltQty   []int     `json:"alt_qty"`
	Unit     []string  `json:"unit"`
}

// Usage is the provider's token accounting for one extraction call.
type Usage struct {
	Requests       int `json:"requests"`
	RequestTokens  int `json:"request_tokens"`
	ResponseTokens int `json:"response_tokens"`
	TotalTokens    int `json:"total_tokens"`
}

// ExtractRequest carries one invoice image to the model.
type ExtractRequest struct {
	Image     []byte
	MediaType string // e.g. "image/png"; PDFs are converted upstream
}

// FieldExtractor is the interface the processing flow depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, Usage, []byte /*rawJSON*/, error)
}
