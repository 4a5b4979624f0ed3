package match

import (
	"sort"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/normalize"
)

// Options control one Match call.
type Options struct {
	// Limit caps the number of returned candidates (default 5).
	Limit int
	// ScoreCutoff drops candidates scoring below it, inclusive lower bound
	// (default 0 keeps everything).
	ScoreCutoff float64
	// Scorer selects the similarity algorithm; zero value is token-set.
	Scorer ScorerKind
}

// DefaultLimit matches the original suggestion count per line item.
const DefaultLimit = 5

type scored struct {
	pos   int
	score float64
}

// Match scores query against every precomputed normalized description in
// idx and returns the ranked candidates at or above the cutoff. An empty or
// all-whitespace query yields nil rather than an error. The index is never
// mutated, so concurrent calls against the same snapshot are safe.
//
// The scan is one pass over the precomputed slice followed by a partial
// sort of the survivors — at 700k entries this stays well under a second,
// and ties keep catalog order so results are deterministic.
func Match(query string, idx *catalog.Index, opts Options) []entity.MatchCandidate {
	if idx == nil || idx.Size() == 0 {
		return nil
	}
	q := normalize.Text(query)
	if q == "" {
		return nil
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	hits := make([]scored, 0, limit*4)
	for i := 0; i < idx.Size(); i++ {
		s := float64(opts.Scorer.score(q, idx.NormalizedAt(i)))
		if s >= opts.ScoreCutoff {
			hits = append(hits, scored{pos: i, score: s})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	// Stable: equal scores keep ascending catalog position (first-seen wins).
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]entity.MatchCandidate, len(hits))
	for i, h := range hits {
		e := idx.EntryAt(h.pos)
		out[i] = entity.MatchCandidate{
			Description:   e.Description,
			Code:          e.Code,
			SecondaryCode: e.SecondaryCode,
			Score:         h.score,
			Rank:          i + 1,
		}
	}
	return out
}
