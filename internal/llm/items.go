package llm

import (
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// ToLineItems turns the parallel arrays into line items, padding short
// arrays with zero values so one ragged column from the model cannot shift
// every field after it. The row count is the longest array's length.
func (f *InvoiceFields) ToLineItems() []*entity.LineItem {
	n := maxLen(
		len(f.SKU), len(f.SKUCode), len(f.Quantity), len(f.Shortage),
		len(f.Breakage), len(f.Leakage), len(f.Batch), len(f.SerialNo),
		len(f.Rate), len(f.Discount), len(f.MRP), len(f.VAT),
		len(f.HSCode), len(f.AltQty), len(f.Unit),
	)

	items := make([]*entity.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &entity.LineItem{
			Description: strAt(f.SKU, i),
			SKUCode:     strAt(f.SKUCode, i),
			Quantity:    intAt(f.Quantity, i),
			Shortage:    intAt(f.Shortage, i),
			Breakage:    intAt(f.Breakage, i),
			Leakage:     intAt(f.Leakage, i),
			Batch:       strAt(f.Batch, i),
			SerialNo:    strAt(f.SerialNo, i),
			Rate:        floatAt(f.Rate, i),
			Discount:    floatAt(f.Discount, i),
			MRP:         floatAt(f.MRP, i),
			VAT:         floatAt(f.VAT, i),
			HSCode:      strAt(f.HSCode, i),
			AltQty:      intAt(f.AltQty, i),
			Unit:        strAt(f.Unit, i),
		})
	}
	return items
}

func maxLen(ns ...int) int {
	m := 0
	for _, n := range ns {
		if n > m {
			m = n
		}
	}
	return m
}

func strAt(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

func intAt(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func floatAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}
