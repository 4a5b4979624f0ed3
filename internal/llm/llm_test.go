package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"invoice_no":"A1"}`, `{"invoice_no":"A1"}`, true},
		{"fenced json", "```json\n{\"invoice_no\":\"A1\"}\n```", `{"invoice_no":"A1"}`, true},
		{"fenced no lang", "```\n{\"invoice_no\":\"A1\"}\n```", `{"invoice_no":"A1"}`, true},
		{"prose around object", "Here you go:\n{\"invoice_no\":\"A1\"}\nDone.", `{"invoice_no":"A1"}`, true},
		{"empty", "   ", "", false},
		{"no object", "sorry, cannot read the image", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNormalizeAndSanitizeJSON_KeyFolding(t *testing.T) {
	raw := []byte(`{
		"Invoice No": "INV-9",
		"MRP Value": [12.5],
		"UOM": ["PCS"],
		"Alt Quantity": [2],
		"totally_unknown": "x"
	}`)

	cleaned, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "INV-9", m["invoice_no"])
	assert.Contains(t, m, "mrp")
	assert.Contains(t, m, "unit")
	assert.Contains(t, m, "alt_qty")
	assert.NotContains(t, m, "totally_unknown")
	assert.Contains(t, dropped, "totally_unknown(unknown)")
}

func TestNormalizeAndSanitizeJSON_NumericCoercion(t *testing.T) {
	raw := []byte(`{"quantity":["12",3.0,null],"rate":["1,250.50",null,7]}`)

	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var out struct {
		Quantity []int     `json:"quantity"`
		Rate     []float64 `json:"rate"`
	}
	require.NoError(t, json.Unmarshal(cleaned, &out))
	assert.Equal(t, []int{12, 3, 0}, out.Quantity)
	assert.Equal(t, []float64{1250.50, 0, 7}, out.Rate)
}

func TestNormalizeAndSanitizeJSON_InvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`{"sku": [`), nil)
	assert.Error(t, err)
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	valid := []byte(`{"invoice_no":"INV-1","sku":["ITEM A"],"sku_code":["A1"],"quantity":[4],"invoice_date":"2024-03-01"}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, valid))

	missingRequired := []byte(`{"invoice_no":"INV-1"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, missingRequired))

	badDate := []byte(`{"invoice_no":"INV-1","sku":[],"sku_code":[],"quantity":[],"invoice_date":"01/03/2024"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, badDate))

	emptyDate := []byte(`{"invoice_no":"INV-1","sku":[],"sku_code":[],"quantity":[],"invoice_date":""}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, emptyDate))

	unknownKey := []byte(`{"invoice_no":"INV-1","sku":[],"sku_code":[],"quantity":[],"surprise":1}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, unknownKey))
}

func TestToLineItems_PadsRaggedArrays(t *testing.T) {
	f := InvoiceFields{
		SKU:      []string{"ALPHA", "BETA", "GAMMA"},
		SKUCode:  []string{"A1", "B2"},
		Quantity: []int{10},
		Rate:     []float64{99.5, 12.0, 7.25},
	}

	items := f.ToLineItems()
	require.Len(t, items, 3)

	assert.Equal(t, "ALPHA", items[0].Description)
	assert.Equal(t, "A1", items[0].SKUCode)
	assert.Equal(t, 10, items[0].Quantity)

	assert.Equal(t, "B2", items[1].SKUCode)
	assert.Equal(t, 0, items[1].Quantity)

	assert.Equal(t, "GAMMA", items[2].Description)
	assert.Equal(t, "", items[2].SKUCode)
	assert.Equal(t, 7.25, items[2].Rate)
}

func TestToLineItems_Empty(t *testing.T) {
	var f InvoiceFields
	assert.Empty(t, f.ToLineItems())
}
