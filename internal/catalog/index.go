package catalog

import (
	"github.com/joseph-ayodele/invoice-reconciler/internal/normalize"
)

// Index is an immutable, query-ready view of the catalog: entries in fetch
// order plus each entry's normalized description precomputed at build time
// (normalization is deterministic and reused across every query, so paying
// it once per refresh instead of once per comparison matters at 700k rows).
//
// entries[i] and normalized[i] always refer to the same catalog row.
type Index struct {
	entries    []Entry
	normalized []string
	byCode     map[string]int
}

// BuildIndex constructs an Index from a catalog fetch. Entries with a blank
// description are unmatchable and are dropped here so they can never surface
// as candidates. Cost is O(n); the result is never mutated — callers needing
// fresh data build a new Index and swap it in (see Cache).
func BuildIndex(entries []Entry) *Index {
	idx := &Index{
		entries:    make([]Entry, 0, len(entries)),
		normalized: make([]string, 0, len(entries)),
		byCode:     make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		norm := normalize.Text(e.Description)
		if norm == "" {
			continue
		}
		idx.entries = append(idx.entries, e)
		idx.normalized = append(idx.normalized, norm)
		// first occurrence wins on duplicate codes
		if _, ok := idx.byCode[e.Code]; !ok {
			idx.byCode[e.Code] = len(idx.entries) - 1
		}
	}
	return idx
}

// Size reports the number of retained entries.
func (idx *Index) Size() int { return len(idx.entries) }

// EntryAt returns the catalog entry at position i.
func (idx *Index) EntryAt(i int) Entry { return idx.entries[i] }

// NormalizedAt returns the precomputed normalized description at position i.
func (idx *Index) NormalizedAt(i int) string { return idx.normalized[i] }

// EntryByCode looks up an entry by its primary code.
func (idx *Index) EntryByCode(code string) (Entry, bool) {
	i, ok := idx.byCode[code]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}
