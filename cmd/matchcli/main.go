// matchcli runs one fuzzy-match query against the catalog, loaded either
// from the database or from a CSV file, and prints the ranked candidates.
//
//	matchcli -csv catalog.csv -query "LACTOGEN PRO1 BIB 24x400g NP" -limit 5
//	DB_URL=postgres://... matchcli -query "TOMATO KETCHUP 500g"
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
	"github.com/joseph-ayodele/invoice-reconciler/internal/recon"
	repo "github.com/joseph-ayodele/invoice-reconciler/internal/repository"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "load catalog from CSV (description,code[,secondary_code[,tax_code]]) instead of DB_URL")
		query   = flag.String("query", "", "invoice description to match (required)")
		limit   = flag.Int("limit", 5, "max candidates to print")
		cutoff  = flag.Float64("cutoff", 60, "minimum score to keep")
		scorer  = flag.String("scorer", "token_set_ratio", "token_set_ratio | token_sort_ratio | wratio | ratio | partial_ratio")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *query == "" {
		fmt.Fprintln(os.Stderr, "matchcli: -query is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	entries, err := loadEntries(ctx, *csvPath, logger)
	if err != nil {
		logger.Error("loading catalog", "error", err)
		os.Exit(1)
	}
	idx := catalog.BuildIndex(entries)
	logger.Info("catalog loaded", "entries", idx.Size())

	start := time.Now()
	candidates := match.Match(*query, idx, match.Options{
		Limit:       *limit,
		ScoreCutoff: *cutoff,
		Scorer:      match.ParseScorer(*scorer),
	})
	elapsed := time.Since(start)

	if len(candidates) == 0 {
		fmt.Printf("no match >= %.1f for %q (%s)\n", *cutoff, *query, elapsed.Round(time.Millisecond))
		return
	}
	for _, c := range candidates {
		fmt.Printf("%2d. %-50s %-12s %6.1f %s\n",
			c.Rank, c.Description, c.Code, c.Score, recon.Classify(c.Score))
	}
	fmt.Printf("matched in %s\n", elapsed.Round(time.Millisecond))
}

func loadEntries(ctx context.Context, csvPath string, logger *slog.Logger) ([]catalog.Entry, error) {
	if csvPath != "" {
		return loadCSV(csvPath)
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("set -csv or the DB_URL env var")
	}
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}
	defer repo.Close(entc, pool, logger)

	return repo.NewCatalogRepository(pool, logger).FetchAll(ctx)
}

func loadCSV(path string) ([]catalog.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []catalog.Entry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			continue
		}
		e := catalog.Entry{Description: rec[0], Code: rec[1]}
		if len(rec) > 2 {
			e.SecondaryCode = rec[2]
		}
		if len(rec) > 3 {
			e.Taxable = catalog.ParseTaxFlag(rec[3])
		}
		entries = append(entries, e)
	}
	return entries, nil
}
