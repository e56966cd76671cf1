package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/finconsulta/doc_ingest_app/internal/models"
	"github.com/finconsulta/doc_ingest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUploadRepository struct {
	BaseRepository
}

// newPgxUploadRepository creates a new repository for upload metadata.
func newPgxUploadRepository(pool *pgxpool.Pool) portsrepo.UploadRepositoryWithTx {
	return &PgxUploadRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UploadRepositoryWithTx = (*PgxUploadRepository)(nil)

const uploadColumns = `id, filename, file_type, file_size, client_name, document_type, status, uploaded_at, processed_at, user_id, error_message`

// SaveUpload inserts a new upload row.
func (r *PgxUploadRepository) SaveUpload(ctx context.Context, upload domain.Upload) error {
	modelUpload := mapping.ToModelUpload(upload)

	query := `
		INSERT INTO uploads (` + uploadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUpload.UploadID,
		modelUpload.Filename,
		modelUpload.FileType,
		modelUpload.FileSize,
		modelUpload.ClientName,
		modelUpload.DocumentType,
		modelUpload.Status,
		modelUpload.UploadedAt,
		modelUpload.ProcessedAt,
		modelUpload.UserID,
		modelUpload.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save upload %s: %w", modelUpload.UploadID, err)
	}
	return nil
}

// UpdateUploadStatus moves an upload to the given status. The WHERE clause
// refuses to touch uploads already in a terminal state, so completed and
// error rows stay immutable at the database level too.
func (r *PgxUploadRepository) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus, errorMessage *string) error {
	query := `
		UPDATE uploads
		SET status = $2, error_message = $3
		WHERE id = $1 AND status NOT IN ('completed', 'error');
	`
	tag, err := r.Pool.Exec(ctx, query, uploadID, string(status), errorMessage)
	if err != nil {
		return fmt.Errorf("failed to update status of upload %s: %w", uploadID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindUploadByID(ctx, uploadID); err != nil {
			return err
		}
		return fmt.Errorf("%w: upload %s is already terminal", apperrors.ErrInvalidTransition, uploadID)
	}
	return nil
}

// CompleteUpload marks a processing upload completed within the given
// transaction, stamping processed_at.
func (r *PgxUploadRepository) CompleteUpload(ctx context.Context, tx pgx.Tx, uploadID string, processedAt time.Time) error {
	query := `
		UPDATE uploads
		SET status = 'completed', processed_at = $2, error_message = NULL
		WHERE id = $1 AND status = 'processing';
	`
	tag, err := tx.Exec(ctx, query, uploadID, processedAt)
	if err != nil {
		return fmt.Errorf("failed to complete upload %s: %w", uploadID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: upload %s is not processing", apperrors.ErrInvalidTransition, uploadID)
	}
	return nil
}

// FindUploadByID retrieves a single upload by its identifier.
func (r *PgxUploadRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.Upload, error) {
	query := `
		SELECT ` + uploadColumns + `
		FROM uploads
		WHERE id = $1;
	`
	var modelUpload models.Upload
	err := r.Pool.QueryRow(ctx, query, uploadID).Scan(
		&modelUpload.UploadID,
		&modelUpload.Filename,
		&modelUpload.FileType,
		&modelUpload.FileSize,
		&modelUpload.ClientName,
		&modelUpload.DocumentType,
		&modelUpload.Status,
		&modelUpload.UploadedAt,
		&modelUpload.ProcessedAt,
		&modelUpload.UserID,
		&modelUpload.ErrorMessage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find upload by id %s: %w", uploadID, err)
	}

	domainUpload := mapping.ToDomainUpload(modelUpload)
	return &domainUpload, nil
}

// ListUploadsByUser retrieves a user's uploads, most recent first.
func (r *PgxUploadRepository) ListUploadsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Upload, error) {
	query := `
		SELECT ` + uploadColumns + `
		FROM uploads
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelUploads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Upload, error) {
		var upload models.Upload
		err := row.Scan(
			&upload.UploadID,
			&upload.Filename,
			&upload.FileType,
			&upload.FileSize,
			&upload.ClientName,
			&upload.DocumentType,
			&upload.Status,
			&upload.UploadedAt,
			&upload.ProcessedAt,
			&upload.UserID,
			&upload.ErrorMessage,
		)
		return upload, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan uploads for user %s: %w", userID, err)
	}

	return mapping.ToDomainUploadSlice(modelUploads), nil
}
