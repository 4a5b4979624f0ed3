package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// canonicalKeys maps folded key forms (lowercase, spaces and underscores
// removed) to schema field names. Models drift between "HS Code",
// "hs_code", and "hscode"; all of them must land on the same field.
var canonicalKeys = map[string]string{
	"orderno":         "order_no",
	"invoiceno":       "invoice_no",
	"deliverynote":    "delivery_note",
	"vehicleno":       "vehicle_no",
	"transporter":     "transporter",
	"dealername":      "dealer_name",
	"companyname":     "company_name",
	"transactiontype": "transaction_type",
	"transactiondate": "transaction_date",
	"duedate":         "due_date",
	"invoicedate":     "invoice_date",
	"sku":             "sku",
	"skucode":         "sku_code",
	"quantity":        "quantity",
	"shortage":        "shortage",
	"breakage":        "breakage",
	"leakage":         "leakage",
	"batch":           "batch",
	"sno":             "sno",
	"rate":            "rate",
	"discount":        "discount",
	"mrp":             "mrp",
	"mrpvalue":        "mrp",
	"vat":             "vat",
	"vatvalue":        "vat",
	"hscode":          "hscode",
	"altqty":          "alt_qty",
	"altquantity":     "alt_qty",
	"unit":            "unit",
	"unitofmeasure":   "unit",
	"uom":             "unit",
}

var intArrayFields = map[string]bool{
	"quantity": true, "shortage": true, "breakage": true,
	"leakage": true, "alt_qty": true,
}

var numberArrayFields = map[string]bool{
	"rate": true, "discount": true, "mrp": true, "vat": true,
}

func foldKey(k string) string {
	k = strings.ToLower(k)
	k = strings.ReplaceAll(k, " ", "")
	return strings.ReplaceAll(k, "_", "")
}

// NormalizeAndSanitizeJSON
// - Folds synonym keys onto schema names (mrpvalue -> mrp, uom -> unit)
// - Drops unknown keys (strict additionalProperties = false friendliness)
// - Coerces numeric array elements that arrived as strings or floats
// - Replaces null array slots with zero values
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	out := make(map[string]any, len(m))
	dropped := make([]string, 0, 4)
	for k, v := range m {
		canon, ok := canonicalKeys[foldKey(k)]
		if !ok {
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		// first canonical occurrence wins
		if _, exists := out[canon]; exists {
			dropped = append(dropped, k+"(duplicate)")
			continue
		}
		out[canon] = v
	}

	for k, v := range out {
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		switch {
		case intArrayFields[k]:
			out[k] = coerceIntArray(arr)
		case numberArrayFields[k]:
			out[k] = coerceNumberArray(arr)
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return b, dropped, nil
}

func coerceIntArray(arr []any) []any {
	for i, v := range arr {
		switch t := v.(type) {
		case float64:
			arr[i] = int(t)
		case string:
			arr[i] = atoiLoose(t)
		case nil:
			arr[i] = 0
		}
	}
	return arr
}

func coerceNumberArray(arr []any) []any {
	for i, v := range arr {
		switch t := v.(type) {
		case string:
			arr[i] = atofLoose(t)
		case nil:
			arr[i] = 0.0
		}
	}
	return arr
}

func atoiLoose(s string) int {
	return int(atofLoose(s))
}

func atofLoose(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return 0
	}
	return f
}
