package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
)

// CatalogRepository feeds the catalog cache. Fetches are full-table scans of
// ~700k rows, so they run on the raw pgx pool rather than through ent.
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]catalog.Entry, error)
}

type catalogRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCatalogRepository(pool *pgxpool.Pool, logger *slog.Logger) CatalogRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogRepository{pool: pool, logger: logger}
}

const fetchCatalogSQL = `
SELECT description, code, secondary_code, base_unit, conversion_factor, alt_unit, tax_code
FROM catalog_items`

type catalogRow struct {
	Description      *string
	Code             string
	SecondaryCode    *string
	BaseUnit         *string
	ConversionFactor *decimal.Decimal
	AltUnit          *string
	TaxCode          *string
}

func (r *catalogRepository) FetchAll(ctx context.Context) ([]catalog.Entry, error) {
	start := time.Now()

	rows, err := r.pool.Query(ctx, fetchCatalogSQL)
	if err != nil {
		r.logger.Error("catalog fetch query failed", "error", err)
		return nil, err
	}

	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[catalogRow])
	if err != nil {
		r.logger.Error("catalog fetch scan failed", "error", err)
		return nil, err
	}

	entries := make([]catalog.Entry, len(raw))
	for i, row := range raw {
		entries[i] = catalog.Entry{
			Description:      deref(row.Description),
			Code:             row.Code,
			SecondaryCode:    deref(row.SecondaryCode),
			BaseUnit:         deref(row.BaseUnit),
			ConversionFactor: row.ConversionFactor,
			AltUnit:          deref(row.AltUnit),
			Taxable:          catalog.ParseTaxFlag(deref(row.TaxCode)),
		}
	}

	r.logger.Info("catalog fetched",
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
