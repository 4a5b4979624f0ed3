package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is sent to the model as a structured-output constraint and
// used locally to validate what comes back.
func BuildInvoiceJSONSchema() map[string]any {
	stringProp := map[string]any{"type": "string"}
	stringArr := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	intArr := map[string]any{"type": "array", "items": map[string]any{"type": "integer"}}
	numArr := map[string]any{"type": "array", "items": map[string]any{"type": "number"}}

	props := map[string]any{
		"order_no":         stringProp,
		"invoice_no":       stringProp,
		"delivery_note":    stringProp,
		"vehicle_no":       stringProp,
		"transporter":      stringProp,
		"dealer_name":      stringProp,
		"company_name":     stringProp,
		"transaction_type": stringProp,
		"transaction_date": dateProp(),
		"due_date":         dateProp(),
		"invoice_date":     dateProp(),
		"sku":              stringArr,
		"sku_code":         stringArr,
		"quantity":         intArr,
		"shortage":         intArr,
		"breakage":         intArr,
		"leakage":          intArr,
		"batch":            stringArr,
		"sno":              stringArr,
		"rate":             numArr,
		"discount":         numArr,
		"mrp":              numArr,
		"vat":              numArr,
		"hscode":           stringArr,
		"alt_qty":          intArr,
		"unit":             stringArr,
	}
	required := []string{"invoice_no", "sku", "sku_code", "quantity"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func dateProp() map[string]any {
	// empty string allowed: the model returns "" for missing dates
	return map[string]any{
		"type":    "string",
		"pattern": `^(\d{4}-\d{2}-\d{2})?$`,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
