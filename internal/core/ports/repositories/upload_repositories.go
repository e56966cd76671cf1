package repositories

import (
	"context"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UploadReader defines read operations for upload metadata
type UploadReader interface {
	// FindUploadByID retrieves a single upload by its identifier.
	FindUploadByID(ctx context.Context, uploadID string) (*domain.Upload, error)

	// ListUploadsByUser retrieves the uploads owned by a user, most recent
	// first, with limit/offset pagination.
	ListUploadsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Upload, error)
}

// UploadWriter defines write operations for upload metadata
type UploadWriter interface {
	// SaveUpload persists a new upload record.
	SaveUpload(ctx context.Context, upload domain.Upload) error

	// UpdateUploadStatus moves an upload to the given status, capturing an
	// optional error message. Implementations must refuse transitions out of
	// terminal states.
	UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus, errorMessage *string) error

	// CompleteUpload marks an upload completed within an existing
	// transaction, stamping the processed timestamp.
	CompleteUpload(ctx context.Context, tx pgx.Tx, uploadID string, processedAt time.Time) error
}

// UploadRepositoryFacade combines all upload-related repository interfaces
type UploadRepositoryFacade interface {
	UploadReader
	UploadWriter
}

// UploadRepositoryWithTx extends UploadRepositoryFacade with transaction capabilities
type UploadRepositoryWithTx interface {
	UploadRepositoryFacade
	TransactionManager
}

// ExtractionReader defines read operations for extraction results
type ExtractionReader interface {
	// FindExtractionByUploadID retrieves the extraction result belonging to
	// an upload, if any.
	FindExtractionByUploadID(ctx context.Context, uploadID string) (*domain.ExtractionResult, error)
}

// ExtractionWriter defines write operations for extraction results
type ExtractionWriter interface {
	// SaveExtraction persists an extraction result within an existing
	// transaction.
	SaveExtraction(ctx context.Context, tx pgx.Tx, extraction domain.ExtractionResult) error
}

// ExtractionRepositoryFacade combines all extraction-related repository interfaces
type ExtractionRepositoryFacade interface {
	ExtractionReader
	ExtractionWriter
}

// RecordReader defines read operations for financial records
type RecordReader interface {
	// ListRecordsByUploadID retrieves the financial records of an upload,
	// ordered by record date descending.
	ListRecordsByUploadID(ctx context.Context, uploadID string) ([]domain.FinancialRecord, error)
}

// RecordWriter defines write operations for financial records
type RecordWriter interface {
	// SaveRecords persists a batch of financial records within an existing
	// transaction.
	SaveRecords(ctx context.Context, tx pgx.Tx, records []domain.FinancialRecord) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}

// SchemaReader defines read operations for document data schemas
type SchemaReader interface {
	// ListDataSchemas retrieves every registered data schema.
	ListDataSchemas(ctx context.Context) ([]domain.DataSchema, error)
}
