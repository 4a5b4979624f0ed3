package recon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
)

type stubOverlay struct {
	mappings map[string]*entity.ExactMapping // keyed by description + "|" + supplier
	err      error
	calls    int
}

func (s *stubOverlay) Lookup(_ context.Context, description, supplier string) (*entity.ExactMapping, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.mappings[description+"|"+supplier], nil
}

// countMatches wraps the real matcher so tests can assert it was skipped.
func countMatches(r *Reconciler, calls *int) {
	inner := r.matchFn
	r.matchFn = func(q string, idx *catalog.Index, opts match.Options) []entity.MatchCandidate {
		*calls++
		return inner(q, idx, opts)
	}
}

func testIndex() *catalog.Index {
	return catalog.BuildIndex([]catalog.Entry{
		{Description: "LACTOGEN PRO 1 BIB 24x400g", Code: "C1", Taxable: true},
		{Description: "NESCAFE CLASSIC 100g JAR", Code: "C2"},
		{Description: "Widget A Catalog Desc", Code: "C9", Taxable: true},
	})
}

func TestReconcileHighConfidenceMatch(t *testing.T) {
	r := New(nil, nil)
	items := []*entity.LineItem{{Description: "LACTOGEN PRO1 BIB 24x400g NP", Quantity: 5, Rate: 123.5}}

	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 60})

	item := items[0]
	require.NotNil(t, item.BestMatch)
	assert.Equal(t, "C1", item.BestMatch.Code)
	assert.GreaterOrEqual(t, item.BestMatch.Score, 80.0)
	assert.Equal(t, entity.ConfidenceHigh, item.Confidence)
	assert.Equal(t, entity.ResolutionNewlyMatched, item.Resolution)
	assert.True(t, item.TaxApplicable)
	// pass-through fields untouched
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 123.5, item.Rate)
}

func TestReconcileEmptyDescription(t *testing.T) {
	r := New(nil, nil)
	items := []*entity.LineItem{{Description: "", SKUCode: "12579462"}}

	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 60})

	item := items[0]
	assert.NotNil(t, item.Candidates)
	assert.Empty(t, item.Candidates)
	assert.Nil(t, item.BestMatch)
	assert.Equal(t, entity.ConfidenceNone, item.Confidence)
	assert.Equal(t, entity.ResolutionUnmatched, item.Resolution)
	assert.False(t, item.TaxApplicable)
	assert.Equal(t, "12579462", item.SKUCode)
}

func TestReconcileOverlayHitSkipsMatcher(t *testing.T) {
	overlay := &stubOverlay{mappings: map[string]*entity.ExactMapping{
		"WIDGET A|ACME": {
			InvoiceDescription: "WIDGET A",
			InvoiceSupplier:    "ACME",
			CatalogCode:        "C9",
			CatalogDescription: "Widget A Catalog Desc",
		},
	}}
	r := New(overlay, nil)
	matcherCalls := 0
	countMatches(r, &matcherCalls)

	items := []*entity.LineItem{{Description: "WIDGET A"}}
	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 60, Supplier: "ACME"})

	item := items[0]
	require.NotNil(t, item.BestMatch)
	assert.Equal(t, "C9", item.BestMatch.Code)
	assert.Equal(t, 100.0, item.BestMatch.Score)
	assert.Equal(t, 1, item.BestMatch.Rank)
	assert.Equal(t, entity.ResolutionExisting, item.Resolution)
	assert.Equal(t, entity.ConfidenceHigh, item.Confidence)
	assert.True(t, item.TaxApplicable, "tax flag resolved from the indexed entry")
	require.Len(t, item.Candidates, 1)
	assert.Equal(t, 0, matcherCalls, "overlay hit must not invoke the matcher")
	assert.Equal(t, 1, overlay.calls)
}

func TestReconcileOverlayErrorFallsBackToFuzzy(t *testing.T) {
	overlay := &stubOverlay{err: errors.New("connection refused")}
	r := New(overlay, nil)

	items := []*entity.LineItem{{Description: "LACTOGEN PRO1 BIB 24x400g NP"}}
	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 60, Supplier: "ACME"})

	item := items[0]
	require.NotNil(t, item.BestMatch, "overlay failure must degrade to fuzzy matching")
	assert.Equal(t, "C1", item.BestMatch.Code)
	assert.Equal(t, entity.ResolutionNewlyMatched, item.Resolution)
	assert.Equal(t, 1, overlay.calls)
}

func TestReconcileOverlaySkippedWithoutSupplier(t *testing.T) {
	overlay := &stubOverlay{}
	r := New(overlay, nil)

	items := []*entity.LineItem{{Description: "NESCAFE CLASSIC 100g JAR"}}
	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 60})

	assert.Equal(t, 0, overlay.calls, "empty supplier must skip the overlay")
	assert.Equal(t, entity.ResolutionNewlyMatched, items[0].Resolution)
}

func TestReconcileUnmatched(t *testing.T) {
	r := New(nil, nil)
	items := []*entity.LineItem{{Description: "COMPLETELY UNRELATED QUERY ZZZ"}}

	r.Reconcile(context.Background(), items, testIndex(), Options{TopK: 3, ScoreCutoff: 95})

	item := items[0]
	assert.Empty(t, item.Candidates)
	assert.Nil(t, item.BestMatch)
	assert.Equal(t, entity.ConfidenceNone, item.Confidence)
	assert.Equal(t, entity.ResolutionUnmatched, item.Resolution)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  entity.ConfidenceTier
	}{
		{100, entity.ConfidenceHigh},
		{85, entity.ConfidenceHigh},
		{84.99, entity.ConfidenceMedium},
		{70, entity.ConfidenceMedium},
		{69.99, entity.ConfidenceLow},
		{60, entity.ConfidenceLow},
		{59.99, entity.ConfidenceNone},
		{0, entity.ConfidenceNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.score), "score %.2f", tc.score)
	}
}
