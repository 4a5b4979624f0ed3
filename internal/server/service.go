// Package server exposes reconciliation over gRPC.
package server

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	reconcilerv1 "github.com/joseph-ayodele/invoice-reconciler/gen/reconciler/v1"
	"github.com/joseph-ayodele/invoice-reconciler/internal/catalog"
	"github.com/joseph-ayodele/invoice-reconciler/internal/common"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/export"
	"github.com/joseph-ayodele/invoice-reconciler/internal/llm"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
	"github.com/joseph-ayodele/invoice-reconciler/internal/recon"
	"github.com/joseph-ayodele/invoice-reconciler/internal/repository"
)

// ReconcilerService wires extraction, the catalog cache, and the matcher
// behind the gRPC surface.
type ReconcilerService struct {
	reconcilerv1.UnimplementedReconcilerServiceServer

	cache       *catalog.Cache
	catalogRepo repository.CatalogRepository
	reconciler  *recon.Reconciler
	extractor   llm.FieldExtractor
	auditRepo   repository.ExtractionLogRepository
	exporter    *export.Service
	defaults    common.MatcherConfig
	logger      *zap.Logger
}

func NewReconcilerService(
	cache *catalog.Cache,
	catalogRepo repository.CatalogRepository,
	reconciler *recon.Reconciler,
	extractor llm.FieldExtractor,
	auditRepo repository.ExtractionLogRepository,
	exporter *export.Service,
	defaults common.MatcherConfig,
	logger *zap.Logger,
) *ReconcilerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconcilerService{
		cache:       cache,
		catalogRepo: catalogRepo,
		reconciler:  reconciler,
		extractor:   extractor,
		auditRepo:   auditRepo,
		exporter:    exporter,
		defaults:    defaults,
		logger:      logger,
	}
}

func (s *ReconcilerService) ProcessInvoice(ctx context.Context, req *reconcilerv1.ProcessInvoiceRequest) (*reconcilerv1.ProcessInvoiceResponse, error) {
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}
	if err := validateOptions(req.GetOptions()); err != nil {
		return nil, err
	}
	start := time.Now()
	if req.GetCompanyId() != "" {
		ctx = common.WithCompanyID(ctx, req.GetCompanyId())
	}

	fields, usage, payload, err := s.extractor.ExtractFields(ctx, llm.ExtractRequest{
		Image:     req.GetImage(),
		MediaType: req.GetMediaType(),
	})
	s.recordAudit(ctx, req, usage, payload, err)
	if err != nil {
		s.logger.Error("invoice extraction failed", zap.Error(err))
		return nil, common.InternalErrorf("extraction failed: %v", err)
	}

	items := fields.ToLineItems()
	idx, err := s.cache.Get(ctx, s.catalogRepo.FetchAll, false)
	if err != nil {
		s.logger.Error("catalog unavailable", zap.Error(err))
		return nil, common.UnavailableError("catalog unavailable")
	}

	s.reconciler.Reconcile(ctx, items, idx, s.reconOptions(req.GetSupplier(), req.GetOptions()))

	s.logger.Info("invoice processed",
		zap.String("invoice_no", fields.InvoiceNo),
		zap.Int("items", len(items)),
		zap.Int("total_tokens", usage.TotalTokens),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return &reconcilerv1.ProcessInvoiceResponse{
		Header: headerToProto(fields),
		Items:  itemsToProto(items),
		Usage: &reconcilerv1.TokenUsage{
			Requests:       int32(usage.Requests),
			RequestTokens:  int32(usage.RequestTokens),
			ResponseTokens: int32(usage.ResponseTokens),
			TotalTokens:    int32(usage.TotalTokens),
		},
	}, nil
}

func (s *ReconcilerService) ReconcileItems(ctx context.Context, req *reconcilerv1.ReconcileItemsRequest) (*reconcilerv1.ReconcileItemsResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items are required")
	}
	if err := validateOptions(req.GetOptions()); err != nil {
		return nil, err
	}

	items := itemsFromProto(req.GetItems())
	idx, err := s.cache.Get(ctx, s.catalogRepo.FetchAll, false)
	if err != nil {
		s.logger.Error("catalog unavailable", zap.Error(err))
		return nil, common.UnavailableError("catalog unavailable")
	}

	s.reconciler.Reconcile(ctx, items, idx, s.reconOptions(req.GetSupplier(), req.GetOptions()))
	return &reconcilerv1.ReconcileItemsResponse{Items: itemsToProto(items)}, nil
}

func (s *ReconcilerService) GetCacheStats(_ context.Context, _ *reconcilerv1.GetCacheStatsRequest) (*reconcilerv1.GetCacheStatsResponse, error) {
	return statsToProto(s.cache.Stats()), nil
}

func (s *ReconcilerService) InvalidateCache(_ context.Context, _ *reconcilerv1.InvalidateCacheRequest) (*reconcilerv1.InvalidateCacheResponse, error) {
	s.cache.Invalidate()
	return &reconcilerv1.InvalidateCacheResponse{Status: s.cache.Stats().Status}, nil
}

func (s *ReconcilerService) RefreshCatalog(ctx context.Context, _ *reconcilerv1.RefreshCatalogRequest) (*reconcilerv1.GetCacheStatsResponse, error) {
	if _, err := s.cache.Get(ctx, s.catalogRepo.FetchAll, true); err != nil {
		s.logger.Error("catalog refresh failed", zap.Error(err))
		return nil, common.UnavailableError("catalog refresh failed")
	}
	return statsToProto(s.cache.Stats()), nil
}

func (s *ReconcilerService) ExportReconciliation(ctx context.Context, req *reconcilerv1.ExportReconciliationRequest) (*reconcilerv1.ExportReconciliationResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items are required")
	}
	if err := validateOptions(req.GetOptions()); err != nil {
		return nil, err
	}

	items := itemsFromProto(req.GetItems())
	idx, err := s.cache.Get(ctx, s.catalogRepo.FetchAll, false)
	if err != nil {
		s.logger.Error("catalog unavailable", zap.Error(err))
		return nil, common.UnavailableError("catalog unavailable")
	}
	s.reconciler.Reconcile(ctx, items, idx, s.reconOptions(req.GetSupplier(), req.GetOptions()))

	invoiceNo := req.GetInvoiceNo()
	xlsx, err := s.exporter.ReviewWorkbook(invoiceNo, items)
	if err != nil {
		s.logger.Error("review export failed", zap.Error(err))
		return nil, common.InternalErrorf("export failed: %v", err)
	}

	name := "reconciliation.xlsx"
	if invoiceNo != "" {
		name = fmt.Sprintf("reconciliation-%s.xlsx", invoiceNo)
	}
	return &reconcilerv1.ExportReconciliationResponse{Xlsx: xlsx, Filename: name}, nil
}

// validateOptions rejects out-of-range overrides before any work happens.
func validateOptions(opts *reconcilerv1.MatchOptions) error {
	if opts == nil {
		return nil
	}
	v := common.NewValidator()
	if opts.GetScoreCutoff() != 0 {
		v.Field("score_cutoff", opts.GetScoreCutoff(), common.ScoreRange)
	}
	if opts.GetTopK() < 0 {
		return common.InvalidArgumentError("top_k must not be negative")
	}
	return common.ValidateAndReturnError(v)
}

// reconOptions merges per-request overrides with the configured defaults.
func (s *ReconcilerService) reconOptions(supplier string, opts *reconcilerv1.MatchOptions) recon.Options {
	out := recon.Options{
		TopK:        s.defaults.TopK,
		ScoreCutoff: s.defaults.ScoreCutoff,
		Scorer:      match.ParseScorer(s.defaults.Scorer),
		Supplier:    supplier,
	}
	if opts == nil {
		return out
	}
	if opts.GetTopK() > 0 {
		out.TopK = int(opts.GetTopK())
	}
	if opts.GetScoreCutoff() > 0 {
		out.ScoreCutoff = opts.GetScoreCutoff()
	}
	if opts.GetScorer() != "" {
		out.Scorer = match.ParseScorer(opts.GetScorer())
	}
	return out
}

// recordAudit writes one extraction_logs row per model call. Audit failures
// are logged and swallowed.
func (s *ReconcilerService) recordAudit(ctx context.Context, req *reconcilerv1.ProcessInvoiceRequest, usage llm.Usage, payload []byte, extractErr error) {
	if s.auditRepo == nil {
		return
	}
	status := "Success"
	remarks := ""
	if extractErr != nil {
		status = "Failure"
		remarks = extractErr.Error()
	}
	err := s.auditRepo.Record(ctx, &entity.ExtractionLog{
		CompanyID:      req.GetCompanyId(),
		Username:       req.GetUsername(),
		LicenceID:      req.GetLicenceId(),
		Requests:       usage.Requests,
		RequestTokens:  usage.RequestTokens,
		ResponseTokens: usage.ResponseTokens,
		TotalTokens:    usage.TotalTokens,
		Status:         status,
		Remarks:        remarks,
		Payload:        payload,
	})
	if err != nil {
		s.logger.Warn("extraction audit write failed", zap.Error(err))
	}
}
