// Package recon reconciles extracted invoice line items against the catalog:
// confirmed-mapping lookup first, fuzzy matching as the fallback, confidence
// classification on the result.
package recon

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
)

// Overlay looks up previously confirmed (description, supplier) mappings.
// Implementations may hit a database; errors are treated as a miss, never as
// a reason to fail the line item.
type Overlay interface {
	Lookup(ctx context.Context, description, supplier string) (*entity.ExactMapping, error)
}

// Options control one Reconcile pass.
type Options struct {
	TopK        int
	ScoreCutoff float64
	Scorer      match.ScorerKind
	Supplier    string
}

// Reconciler enriches line items in place. Overlay is optional.
type Reconciler struct {
	overlay Overlay
	logger  *slog.Logger

	matchFn func(string, *catalog.Index, match.Options) []entity.MatchCandidate
}

func New(overlay Overlay, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{overlay: overlay, logger: logger, matchFn: match.Match}
}

// Reconcile processes each line item against idx: blank descriptions are
// marked unmatched, overlay hits short-circuit as 100-score Existing
// resolutions, and everything else goes through the fuzzy matcher. Only the
// match fields are written; extracted fields pass through untouched. The
// mutated slice is returned for convenience.
func (r *Reconciler) Reconcile(ctx context.Context, items []*entity.LineItem, idx *catalog.Index, opts Options) []*entity.LineItem {
	for _, item := range items {
		r.reconcileOne(ctx, item, idx, opts)
	}
	return items
}

func (r *Reconciler) reconcileOne(ctx context.Context, item *entity.LineItem, idx *catalog.Index, opts Options) {
	item.Candidates = nil
	item.BestMatch = nil
	item.TaxApplicable = false

	if item.Description == "" {
		item.Confidence = entity.ConfidenceNone
		item.Resolution = entity.ResolutionUnmatched
		item.Candidates = []entity.MatchCandidate{}
		return
	}

	if mapped := r.lookupExisting(ctx, item.Description, opts.Supplier); mapped != nil {
		best := entity.MatchCandidate{
			Description:   mapped.CatalogDescription,
			Code:          mapped.CatalogCode,
			SecondaryCode: mapped.CatalogSecondary,
			Score:         100,
			Rank:          1,
		}
		if best.Description == "" {
			best.Description = mapped.CatalogCode
		}
		item.BestMatch = &best
		item.Candidates = []entity.MatchCandidate{best}
		item.Confidence = entity.ConfidenceHigh
		item.Resolution = entity.ResolutionExisting
		if entry, ok := idx.EntryByCode(mapped.CatalogCode); ok {
			item.TaxApplicable = entry.Taxable
		}
		return
	}

	candidates := r.matchFn(item.Description, idx, match.Options{
		Limit:       opts.TopK,
		ScoreCutoff: opts.ScoreCutoff,
		Scorer:      opts.Scorer,
	})
	if candidates == nil {
		candidates = []entity.MatchCandidate{}
	}
	item.Candidates = candidates

	if len(candidates) == 0 {
		item.Confidence = entity.ConfidenceNone
		item.Resolution = entity.ResolutionUnmatched
		return
	}

	best := candidates[0]
	item.BestMatch = &best
	item.Confidence = Classify(best.Score)
	item.Resolution = entity.ResolutionNewlyMatched
	if entry, ok := idx.EntryByCode(best.Code); ok {
		item.TaxApplicable = entry.Taxable
	}
}

// lookupExisting consults the overlay when one is configured and the
// supplier is known. Overlay failures degrade to fuzzy matching.
func (r *Reconciler) lookupExisting(ctx context.Context, description, supplier string) *entity.ExactMapping {
	if r.overlay == nil || supplier == "" {
		return nil
	}
	mapped, err := r.overlay.Lookup(ctx, description, supplier)
	if err != nil {
		r.logger.Warn("mapping overlay lookup failed, falling back to fuzzy matching",
			"supplier", supplier, "error", err)
		return nil
	}
	return mapped
}

// Classify buckets a best-match score into a confidence tier. Bounds are
// inclusive at the lower edge: 85 is high, 70 is medium, 60 is low.
func Classify(score float64) entity.ConfidenceTier {
	switch {
	case score >= 85:
		return entity.ConfidenceHigh
	case score >= 70:
		return entity.ConfidenceMedium
	case score >= 60:
		return entity.ConfidenceLow
	default:
		return entity.ConfidenceNone
	}
}
