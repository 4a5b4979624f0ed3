package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/invoice-reconciler/gen/ent"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// ExtractionLogRepository persists one audit row per vision-model call.
type ExtractionLogRepository interface {
	Record(ctx context.Context, log *entity.ExtractionLog) error
}

type extractionLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionLogRepository(client *ent.Client, logger *slog.Logger) ExtractionLogRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &extractionLogRepository{client: client, logger: logger}
}

func (r *extractionLogRepository) Record(ctx context.Context, log *entity.ExtractionLog) error {
	create := r.client.ExtractionLog.Create().
		SetCompanyID(log.CompanyID).
		SetUsername(log.Username).
		SetRequests(log.Requests).
		SetRequestTokens(log.RequestTokens).
		SetResponseTokens(log.ResponseTokens).
		SetTotalTokens(log.TotalTokens).
		SetStatus(log.Status)
	if log.LicenceID != "" {
		create = create.SetLicenceID(log.LicenceID)
	}
	if log.Remarks != "" {
		create = create.SetRemarks(log.Remarks)
	}
	if len(log.Payload) > 0 {
		create = create.SetPayload(log.Payload)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to record extraction log",
			"company_id", log.CompanyID, "status", log.Status, "error", err)
		return err
	}
	log.ID = row.ID
	log.CreatedAt = row.CreatedAt
	return nil
}
