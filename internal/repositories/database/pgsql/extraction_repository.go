package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/finconsulta/doc_ingest_app/internal/models"
	"github.com/finconsulta/doc_ingest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExtractionRepository struct {
	BaseRepository
}

// newPgxExtractionRepository creates a new repository for extraction results.
func newPgxExtractionRepository(pool *pgxpool.Pool) portsrepo.ExtractionRepositoryFacade {
	return &PgxExtractionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExtractionRepositoryFacade = (*PgxExtractionRepository)(nil)

// SaveExtraction inserts an extraction result within an existing transaction.
func (r *PgxExtractionRepository) SaveExtraction(ctx context.Context, tx pgx.Tx, extraction domain.ExtractionResult) error {
	modelExtraction, err := mapping.ToModelExtractedData(extraction)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO extracted_data (id, upload_id, document_type, data, record_count, validation_errors, extracted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		modelExtraction.ExtractionID,
		modelExtraction.UploadID,
		modelExtraction.DocumentType,
		modelExtraction.Data,
		modelExtraction.RecordCount,
		modelExtraction.ValidationErrors,
		modelExtraction.ExtractedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save extraction %s: %w", modelExtraction.ExtractionID, err)
	}
	return nil
}

// FindExtractionByUploadID retrieves the most recent extraction result for
// an upload.
func (r *PgxExtractionRepository) FindExtractionByUploadID(ctx context.Context, uploadID string) (*domain.ExtractionResult, error) {
	query := `
		SELECT id, upload_id, document_type, data, record_count, validation_errors, extracted_at
		FROM extracted_data
		WHERE upload_id = $1
		ORDER BY extracted_at DESC
		LIMIT 1;
	`
	var modelExtraction models.ExtractedData
	err := r.Pool.QueryRow(ctx, query, uploadID).Scan(
		&modelExtraction.ExtractionID,
		&modelExtraction.UploadID,
		&modelExtraction.DocumentType,
		&modelExtraction.Data,
		&modelExtraction.RecordCount,
		&modelExtraction.ValidationErrors,
		&modelExtraction.ExtractedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find extraction for upload %s: %w", uploadID, err)
	}

	domainExtraction, err := mapping.ToDomainExtractionResult(modelExtraction)
	if err != nil {
		return nil, err
	}
	return &domainExtraction, nil
}
