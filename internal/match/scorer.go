// Package match scores invoice descriptions against a catalog index using
// the fuzzywuzzy scorer family.
package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// ScorerKind selects the similarity algorithm. The zero value is the
// token-set scorer, which is the right default for product descriptions:
// it compares unordered word sets, so an OCR'd description missing a
// trailing qualifier still scores highly against the fuller catalog text.
type ScorerKind int

const (
	// ScorerTokenSet handles word order plus missing/extra words.
	ScorerTokenSet ScorerKind = iota
	// ScorerTokenSort handles word order only; all words should be present.
	ScorerTokenSort
	// ScorerWeighted is the balanced general-purpose blend.
	ScorerWeighted
	// ScorerRatio is strict character-sequence similarity.
	ScorerRatio
	// ScorerPartial scores the best matching substring.
	ScorerPartial
)

func (k ScorerKind) String() string {
	switch k {
	case ScorerTokenSort:
		return "token_sort_ratio"
	case ScorerWeighted:
		return "wratio"
	case ScorerRatio:
		return "ratio"
	case ScorerPartial:
		return "partial_ratio"
	default:
		return "token_set_ratio"
	}
}

// ParseScorer maps an external scorer name to a ScorerKind. Unknown names
// fall back to the token-set default so that configuration drift degrades
// matching quality, not availability.
func ParseScorer(name string) ScorerKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "token_sort_ratio", "token_sort":
		return ScorerTokenSort
	case "wratio", "weighted_ratio", "weighted":
		return ScorerWeighted
	case "ratio":
		return ScorerRatio
	case "partial_ratio", "partial":
		return ScorerPartial
	default:
		return ScorerTokenSet
	}
}

// score compares two already-normalized strings, returning 0..100.
func (k ScorerKind) score(query, candidate string) int {
	switch k {
	case ScorerTokenSort:
		return fuzzy.TokenSortRatio(query, candidate)
	case ScorerWeighted:
		return fuzzy.WRatio(query, candidate)
	case ScorerRatio:
		return fuzzy.Ratio(query, candidate)
	case ScorerPartial:
		return fuzzy.PartialRatio(query, candidate)
	default:
		return fuzzy.TokenSetRatio(query, candidate)
	}
}
