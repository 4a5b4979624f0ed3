package entity

// ConfidenceTier buckets a best-match score for downstream decisions
// (auto-accept vs. human review).
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceNone   ConfidenceTier = "none"
)

// ResolutionKind records how a line item was resolved against the catalog.
type ResolutionKind string

const (
	// ResolutionExisting means a previously confirmed mapping was found.
	ResolutionExisting ResolutionKind = "Existing"
	// ResolutionNewlyMatched means fuzzy matching produced at least one candidate.
	ResolutionNewlyMatched ResolutionKind = "NewlyMatched"
	// ResolutionUnmatched means nothing cleared the score cutoff.
	ResolutionUnmatched ResolutionKind = "Unmatched"
)

// MatchCandidate is one ranked catalog suggestion for a line item.
// Produced per query, never persisted.
type MatchCandidate struct {
	Description   string  `json:"description"`
	Code          string  `json:"code"`
	SecondaryCode string  `json:"secondary_code,omitempty"`
	Score         float64 `json:"score"`
	Rank          int     `json:"rank"`
}

// LineItem is one extracted invoice row. The extraction fields pass through
// reconciliation untouched; the match fields are filled in by the reconciler.
type LineItem struct {
	Description string  `json:"description"`
	SKUCode     string  `json:"sku_code,omitempty"`
	Quantity    int     `json:"quantity"`
	Shortage    int     `json:"shortage"`
	Breakage    int     `json:"breakage"`
	Leakage     int     `json:"leakage"`
	Batch       string  `json:"batch,omitempty"`
	SerialNo    string  `json:"sno,omitempty"`
	Rate        float64 `json:"rate"`
	Discount    float64 `json:"discount"`
	MRP         float64 `json:"mrp"`
	VAT         float64 `json:"vat"`
	HSCode      string  `json:"hscode,omitempty"`
	AltQty      int     `json:"alt_qty"`
	Unit        string  `json:"unit,omitempty"`

	Candidates    []MatchCandidate `json:"candidates,omitempty"`
	BestMatch     *MatchCandidate  `json:"best_match,omitempty"`
	Confidence    ConfidenceTier   `json:"match_confidence,omitempty"`
	Resolution    ResolutionKind   `json:"resolution,omitempty"`
	TaxApplicable bool             `json:"tax_applicable"`
}
