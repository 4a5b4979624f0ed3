package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
)

func buildIndex(descs ...string) *catalog.Index {
	entries := make([]catalog.Entry, len(descs))
	for i, d := range descs {
		entries[i] = catalog.Entry{Description: d, Code: "C" + string(rune('1'+i))}
	}
	return catalog.BuildIndex(entries)
}

func TestMatchEmptyQuery(t *testing.T) {
	idx := buildIndex("LACTOGEN PRO 1 BIB 24x400g")
	assert.Nil(t, Match("", idx, Options{}))
	assert.Nil(t, Match("   \t ", idx, Options{}))
	assert.Nil(t, Match("...", idx, Options{}), "query that normalizes to empty")
}

func TestMatchEmptyIndex(t *testing.T) {
	assert.Nil(t, Match("anything", buildIndex(), Options{}))
	assert.Nil(t, Match("anything", nil, Options{}))
}

func TestMatchScenarioLactogen(t *testing.T) {
	idx := buildIndex("LACTOGEN PRO 1 BIB 24x400g")

	got := Match("LACTOGEN PRO1 BIB 24x400g NP", idx, Options{Limit: 3, ScoreCutoff: 60})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "C1", got[0].Code)
	assert.GreaterOrEqual(t, got[0].Score, 80.0)
}

func TestMatchZeroCutoffReturnsLimit(t *testing.T) {
	idx := buildIndex(
		"LACTOGEN PRO 1 BIB 24x400g",
		"LACTOGEN PRO 2 BIB 24x400g",
		"NESCAFE CLASSIC 100g JAR",
		"NESCAFE GOLD 50g POUCH",
		"MAGGI NOODLES 2-MIN 70g",
	)

	got := Match("LACTOGEN", idx, Options{Limit: 3, ScoreCutoff: 0})
	require.Len(t, got, 3)

	got = Match("LACTOGEN", idx, Options{Limit: 10, ScoreCutoff: 0})
	require.Len(t, got, idx.Size(), "limit beyond index size returns everything")
	for i, c := range got {
		assert.Equal(t, i+1, c.Rank)
	}
}

func TestMatchDeterministicAndSorted(t *testing.T) {
	idx := buildIndex(
		"NESCAFE CLASSIC 100g JAR",
		"NESCAFE CLASSIC 50g POUCH",
		"NESCAFE GOLD 100g JAR",
	)
	opts := Options{Limit: 3, ScoreCutoff: 0}

	first := Match("NESCAFE CLASSIC 100g", idx, opts)
	second := Match("NESCAFE CLASSIC 100g", idx, opts)
	require.Equal(t, first, second, "identical inputs must give identical results")

	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Score, first[i].Score, "scores must be non-increasing")
	}
}

func TestMatchTiesKeepCatalogOrder(t *testing.T) {
	// Both entries normalize to the same string, so every scorer ties them.
	idx := buildIndex(
		"Widget-A (Special)",
		"WIDGET A SPECIAL!!",
	)

	got := Match("widget a special", idx, Options{Limit: 2, ScoreCutoff: 0})
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Score, got[1].Score)
	assert.Equal(t, "C1", got[0].Code, "first-inserted entry ranks first on ties")
	assert.Equal(t, "C2", got[1].Code)
	assert.Equal(t, 100.0, got[0].Score)
}

func TestMatchCutoffInclusive(t *testing.T) {
	idx := buildIndex("ALPHA BETA GAMMA")

	all := Match("ALPHA BETA GAMMA", idx, Options{Limit: 1, ScoreCutoff: 100})
	require.Len(t, all, 1, "cutoff is an inclusive lower bound")
	assert.Equal(t, 100.0, all[0].Score)

	none := Match("ZZZZ", idx, Options{Limit: 1, ScoreCutoff: 100})
	assert.Empty(t, none)
}

func TestParseScorerFallsBackToTokenSet(t *testing.T) {
	assert.Equal(t, ScorerTokenSort, ParseScorer("token_sort_ratio"))
	assert.Equal(t, ScorerWeighted, ParseScorer("WRatio"))
	assert.Equal(t, ScorerRatio, ParseScorer("ratio"))
	assert.Equal(t, ScorerPartial, ParseScorer("partial_ratio"))
	assert.Equal(t, ScorerTokenSet, ParseScorer("token_set_ratio"))
	assert.Equal(t, ScorerTokenSet, ParseScorer("no_such_scorer"))
	assert.Equal(t, ScorerTokenSet, ParseScorer(""))
}

func TestScorerKindsAllScoreIdenticalStringsPerfect(t *testing.T) {
	idx := buildIndex("LACTOGEN PRO 1 BIB 24x400g")
	for _, k := range []ScorerKind{ScorerTokenSet, ScorerTokenSort, ScorerWeighted, ScorerRatio, ScorerPartial} {
		got := Match("LACTOGEN PRO 1 BIB 24x400g", idx, Options{Limit: 1, Scorer: k})
		require.Len(t, got, 1, "scorer %s", k)
		assert.Equal(t, 100.0, got[0].Score, "scorer %s", k)
	}
}
