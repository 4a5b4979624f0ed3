// Package export renders reconciliation results as XLSX workbooks for
// human review of low-confidence and unmatched line items.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// Service produces XLSX bytes from reconciled line items.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReviewWorkbook writes one row per line item: the extracted fields, the
// best catalog suggestion, and the runner-up candidates flattened into a
// single column. Reviewers sort by the Confidence column, so it carries the
// tier string rather than the raw score.
func (s *Service) ReviewWorkbook(invoiceNo string, items []*entity.LineItem) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Reconciliation"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet, _ := f.GetSheetIndex("Sheet1")
	if defaultSheet != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Invoice No",
		"Invoice Description",
		"SKU Code",
		"Quantity",
		"Rate",
		"MRP",
		"VAT",
		"Matched Description",
		"Matched Code",
		"Score",
		"Confidence",
		"Resolution",
		"Tax Applicable",
		"Other Candidates",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, invoiceNo)
		write(2, it.Description)
		write(3, it.SKUCode)
		write(4, it.Quantity)
		write(5, it.Rate)
		write(6, it.MRP)
		write(7, it.VAT)

		if it.BestMatch != nil {
			write(8, it.BestMatch.Description)
			write(9, it.BestMatch.Code)
			write(10, it.BestMatch.Score)
		}
		write(11, string(it.Confidence))
		write(12, string(it.Resolution))
		write(13, it.TaxApplicable)
		write(14, truncate(candidateSummary(it), 200))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 42)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "G", 10)
	_ = f.SetColWidth(sheet, "H", "H", 42)
	_ = f.SetColWidth(sheet, "I", "I", 14)
	_ = f.SetColWidth(sheet, "J", "M", 12)
	_ = f.SetColWidth(sheet, "N", "N", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoice_no", invoiceNo,
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// candidateSummary flattens the non-best candidates into "DESC [CODE] 84.0"
// segments separated by " | ".
func candidateSummary(it *entity.LineItem) string {
	out := ""
	for _, c := range it.Candidates {
		if c.Rank == 1 {
			continue
		}
		seg := fmt.Sprintf("%s [%s] %.1f", c.Description, c.Code, c.Score)
		if out != "" {
			out += " | "
		}
		out += seg
	}
	return out
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
