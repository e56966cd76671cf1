package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/finconsulta/doc_ingest_app/internal/dto"
	"github.com/finconsulta/doc_ingest_app/internal/utils/fieldmap"
	"github.com/finconsulta/doc_ingest_app/internal/utils/tabular"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// UploadService owns the upload lifecycle: it runs the extraction pipeline
// over submitted files and persists upload, extraction, and records through
// the injected repositories. It holds no state between calls.
type UploadService struct {
	uploadRepo     portsrepo.UploadRepositoryWithTx
	extractionRepo portsrepo.ExtractionRepositoryFacade
	recordRepo     portsrepo.RecordRepositoryFacade
	dictionary     fieldmap.Dictionary
}

// NewUploadService creates a new UploadService.
func NewUploadService(
	uploadRepo portsrepo.UploadRepositoryWithTx,
	extractionRepo portsrepo.ExtractionRepositoryFacade,
	recordRepo portsrepo.RecordRepositoryFacade,
	dictionary fieldmap.Dictionary,
) *UploadService {
	return &UploadService{
		uploadRepo:     uploadRepo,
		extractionRepo: extractionRepo,
		recordRepo:     recordRepo,
		dictionary:     dictionary,
	}
}

// Preview extracts and normalizes a file without touching persistence.
func (s *UploadService) Preview(ctx context.Context, req dto.ProcessFileRequest) (*domain.ExtractionResult, error) {
	if !req.DocumentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.DocumentType)
	}

	rows, err := s.extractRows(req)
	if err != nil {
		return nil, err
	}

	return &domain.ExtractionResult{
		DocumentType: req.DocumentType,
		Rows:         rows,
		RecordCount:  len(rows),
		ExtractedAt:  time.Now(),
	}, nil
}

// ProcessAndStore runs the full pipeline for a new upload. The upload starts
// directly in processing state; completed and error are the only outcomes.
func (s *UploadService) ProcessAndStore(ctx context.Context, req dto.ProcessFileRequest, userID string) (*domain.ProcessOutcome, error) {
	if !req.DocumentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.DocumentType)
	}

	upload := domain.Upload{
		UploadID:     uuid.NewString(),
		Filename:     req.Filename,
		FileType:     fileTypeOf(req.Filename),
		FileSize:     req.Size,
		ClientName:   req.ClientName,
		DocumentType: req.DocumentType,
		Status:       domain.UploadStatusProcessing,
		UploadedAt:   time.Now(),
		UserID:       userID,
	}
	if err := s.uploadRepo.SaveUpload(ctx, upload); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	return s.runPipeline(ctx, upload, req)
}

// CreateUpload registers an upload in pending state; parsing happens later
// through ProcessUpload.
func (s *UploadService) CreateUpload(ctx context.Context, req dto.CreateUploadRequest, userID string) (*domain.Upload, error) {
	documentType := domain.DocumentType(req.DocumentType)
	if !documentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, req.DocumentType)
	}

	upload := domain.Upload{
		UploadID:     uuid.NewString(),
		Filename:     req.Filename,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		ClientName:   req.ClientName,
		DocumentType: documentType,
		Status:       domain.UploadStatusPending,
		UploadedAt:   time.Now(),
		UserID:       userID,
	}
	if err := s.uploadRepo.SaveUpload(ctx, upload); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}
	return &upload, nil
}

// ProcessUpload runs the pipeline for a previously created pending upload.
func (s *UploadService) ProcessUpload(ctx context.Context, uploadID string, content []byte, userID string) (*domain.ProcessOutcome, error) {
	upload, err := s.uploadRepo.FindUploadByID(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find upload %s: %w", uploadID, err)
	}
	if upload.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if upload.Status != domain.UploadStatusPending {
		return nil, fmt.Errorf("%w: upload %s is %s, not pending", apperrors.ErrInvalidTransition, uploadID, upload.Status)
	}
	if err := s.uploadRepo.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusProcessing, nil); err != nil {
		return nil, fmt.Errorf("failed to move upload %s to processing: %w", uploadID, err)
	}

	req := dto.ProcessFileRequest{
		Filename:     upload.Filename,
		ClientName:   upload.ClientName,
		DocumentType: upload.DocumentType,
		Size:         upload.FileSize,
		Content:      content,
	}
	return s.runPipeline(ctx, *upload, req)
}

// runPipeline executes read -> normalize -> materialize -> persist for an
// upload already in processing state. Extraction, records, and the completed
// status land in one transaction: a partial write can never leave a
// completed upload with missing records.
func (s *UploadService) runPipeline(ctx context.Context, upload domain.Upload, req dto.ProcessFileRequest) (*domain.ProcessOutcome, error) {
	rows, err := s.extractRows(req)
	if err != nil {
		return nil, s.failUpload(ctx, upload.UploadID, err)
	}

	now := time.Now()
	extraction := domain.ExtractionResult{
		ExtractionID: uuid.NewString(),
		UploadID:     upload.UploadID,
		DocumentType: upload.DocumentType,
		Rows:         rows,
		RecordCount:  len(rows),
		ExtractedAt:  now,
	}

	records := make([]domain.FinancialRecord, len(rows))
	for i, row := range rows {
		record, stats := MaterializeRecord(row, upload.DocumentType, upload.ClientName)
		record.RecordID = uuid.NewString()
		record.ExtractionID = extraction.ExtractionID
		record.UploadID = upload.UploadID
		record.CreatedAt = now
		records[i] = record
		extraction.CoercionStats.Merge(stats)
	}

	tx, err := s.uploadRepo.Begin(ctx)
	if err != nil {
		return nil, s.failUpload(ctx, upload.UploadID, err)
	}
	if err := s.extractionRepo.SaveExtraction(ctx, tx, extraction); err != nil {
		_ = s.uploadRepo.Rollback(ctx, tx)
		return nil, s.failUpload(ctx, upload.UploadID, fmt.Errorf("failed to save extraction: %w", err))
	}
	if err := s.recordRepo.SaveRecords(ctx, tx, records); err != nil {
		_ = s.uploadRepo.Rollback(ctx, tx)
		return nil, s.failUpload(ctx, upload.UploadID, fmt.Errorf("failed to save records: %w", err))
	}
	if err := s.uploadRepo.CompleteUpload(ctx, tx, upload.UploadID, now); err != nil {
		_ = s.uploadRepo.Rollback(ctx, tx)
		return nil, s.failUpload(ctx, upload.UploadID, fmt.Errorf("failed to complete upload: %w", err))
	}
	if err := s.uploadRepo.Commit(ctx, tx); err != nil {
		return nil, s.failUpload(ctx, upload.UploadID, fmt.Errorf("failed to commit upload: %w", err))
	}

	return &domain.ProcessOutcome{
		UploadID:      upload.UploadID,
		ExtractionID:  extraction.ExtractionID,
		RecordCount:   len(records),
		CoercionStats: extraction.CoercionStats,
	}, nil
}

// ListUploads retrieves a user's uploads, most recent first.
func (s *UploadService) ListUploads(ctx context.Context, userID string, limit, offset int) ([]domain.Upload, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	uploads, err := s.uploadRepo.ListUploadsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	if uploads == nil {
		uploads = []domain.Upload{}
	}
	return uploads, nil
}

// GetUploadByID retrieves one upload with its extraction and records.
func (s *UploadService) GetUploadByID(ctx context.Context, uploadID string, userID string) (*domain.UploadDetail, error) {
	upload, err := s.uploadRepo.FindUploadByID(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find upload %s: %w", uploadID, err)
	}
	if upload.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	detail := &domain.UploadDetail{Upload: *upload, Records: []domain.FinancialRecord{}}

	extraction, err := s.extractionRepo.FindExtractionByUploadID(ctx, uploadID)
	if err == nil {
		detail.Extraction = extraction
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find extraction for upload %s: %w", uploadID, err)
	}

	records, err := s.recordRepo.ListRecordsByUploadID(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for upload %s: %w", uploadID, err)
	}
	if records != nil {
		detail.Records = records
	}
	return detail, nil
}

// extractRows runs the tabular reader and the field normalizer.
func (s *UploadService) extractRows(req dto.ProcessFileRequest) ([]*domain.NormalizedRow, error) {
	raws, err := tabular.Read(req.Content, req.Filename, req.MIMEType)
	if err != nil {
		return nil, err
	}
	return s.dictionary.NormalizeRows(raws, req.DocumentType), nil
}

// failUpload moves the upload to error state, capturing the cause. The cause
// is always returned to the caller; a failure of the status write itself is
// appended rather than swallowed.
func (s *UploadService) failUpload(ctx context.Context, uploadID string, cause error) error {
	msg := cause.Error()
	if err := s.uploadRepo.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusError, &msg); err != nil {
		return fmt.Errorf("%w (additionally failed to mark upload %s errored: %v)", cause, uploadID, err)
	}
	return cause
}

func fileTypeOf(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
