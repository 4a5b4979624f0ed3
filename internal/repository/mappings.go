package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/invoice-reconciler/gen/ent"
	"github.com/joseph-ayodele/invoice-reconciler/gen/ent/exactmapping"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// MappingRepository reads confirmed invoice→catalog associations. It
// satisfies recon.Overlay: a miss is (nil, nil), and callers treat errors as
// a miss too.
type MappingRepository interface {
	Lookup(ctx context.Context, description, supplier string) (*entity.ExactMapping, error)
}

type mappingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMappingRepository(client *ent.Client, logger *slog.Logger) MappingRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &mappingRepository{client: client, logger: logger}
}

func (r *mappingRepository) Lookup(ctx context.Context, description, supplier string) (*entity.ExactMapping, error) {
	row, err := r.client.ExactMapping.Query().
		Where(
			exactmapping.InvoiceDescription(description),
			exactmapping.InvoiceSupplier(supplier),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("exact mapping lookup failed",
			"supplier", supplier, "error", err)
		return nil, err
	}

	return &entity.ExactMapping{
		InvoiceDescription: row.InvoiceDescription,
		InvoiceSupplier:    row.InvoiceSupplier,
		CatalogCode:        row.CatalogCode,
		CatalogDescription: row.CatalogDescription,
		CatalogSecondary:   row.CatalogSecondaryCode,
	}, nil
}
