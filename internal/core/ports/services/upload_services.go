package services

import (
	"context"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/dto"
)

// UploadProcessorSvc defines the operations that run the ingestion pipeline.
type UploadProcessorSvc interface {
	// Preview extracts and normalizes a file without persisting anything.
	Preview(ctx context.Context, req dto.ProcessFileRequest) (*domain.ExtractionResult, error)

	// ProcessAndStore runs the full pipeline: creates the upload in
	// processing state, extracts, normalizes, materializes, and persists
	// extraction plus records atomically before completing the upload.
	ProcessAndStore(ctx context.Context, req dto.ProcessFileRequest, userID string) (*domain.ProcessOutcome, error)

	// CreateUpload registers an upload in pending state without parsing.
	CreateUpload(ctx context.Context, req dto.CreateUploadRequest, userID string) (*domain.Upload, error)

	// ProcessUpload runs the pipeline for a previously created pending
	// upload, moving it to processing first.
	ProcessUpload(ctx context.Context, uploadID string, content []byte, userID string) (*domain.ProcessOutcome, error)
}

// UploadReaderSvc defines the query surface over past uploads.
type UploadReaderSvc interface {
	// ListUploads retrieves a user's uploads, most recent first.
	ListUploads(ctx context.Context, userID string, limit, offset int) ([]domain.Upload, error)

	// GetUploadByID retrieves one upload with its extraction result and
	// financial records ordered by date.
	GetUploadByID(ctx context.Context, uploadID string, userID string) (*domain.UploadDetail, error)
}

// UploadSvcFacade combines all upload-related service interfaces
type UploadSvcFacade interface {
	UploadProcessorSvc
	UploadReaderSvc
}

// SchemaReaderSvc exposes the registered document data schemas.
type SchemaReaderSvc interface {
	ListDataSchemas(ctx context.Context) ([]domain.DataSchema, error)
}
