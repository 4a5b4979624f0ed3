// Package catalog holds the reference catalog in a query-ready form: the
// immutable entry set, the precomputed candidate index, and the TTL cache
// that shares one index snapshot across concurrent requests.
package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one reference catalog row. Entries are built in bulk from a
// catalog fetch and never mutated; a refresh replaces the whole set.
type Entry struct {
	Description      string           `json:"description"`
	Code             string           `json:"code"`
	SecondaryCode    string           `json:"secondary_code,omitempty"`
	BaseUnit         string           `json:"base_unit,omitempty"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor,omitempty"`
	AltUnit          string           `json:"alt_unit,omitempty"`
	Taxable          bool             `json:"taxable"`
}

// ParseTaxFlag interprets the catalog's tax indicator, which arrives as a
// numeric or string field depending on the upstream system. Empty or
// unparseable values are not taxable.
func ParseTaxFlag(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "":
		return false
	case "Y", "YES", "TRUE":
		return true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0
	}
	return false
}
