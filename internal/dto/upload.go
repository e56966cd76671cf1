package dto

import (
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
)

// ProcessFileRequest carries one uploaded file through the ingestion
// pipeline: raw bytes plus the metadata declared by the client.
type ProcessFileRequest struct {
	Filename     string
	MIMEType     string
	Size         int64
	ClientName   string
	DocumentType domain.DocumentType
	Content      []byte
}

// CreateUploadRequest registers an upload in pending state without running
// the pipeline yet (two-phase flow).
type CreateUploadRequest struct {
	Filename     string `json:"filename" binding:"required"`
	FileType     string `json:"fileType" binding:"required"`
	FileSize     int64  `json:"fileSize" binding:"required,min=1"`
	ClientName   string `json:"clientName" binding:"required"`
	DocumentType string `json:"documentType" binding:"required"`
}

// UploadResponse defines the data returned for an upload.
type UploadResponse struct {
	UploadID     string     `json:"uploadID"`
	Filename     string     `json:"filename"`
	FileType     string     `json:"fileType"`
	FileSize     int64      `json:"fileSize"`
	ClientName   string     `json:"clientName"`
	DocumentType string     `json:"documentType"`
	Status       string     `json:"status"`
	UploadedAt   time.Time  `json:"uploadedAt"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
}

// ToUploadResponse converts a domain.Upload to UploadResponse DTO
func ToUploadResponse(u *domain.Upload) UploadResponse {
	return UploadResponse{
		UploadID:     u.UploadID,
		Filename:     u.Filename,
		FileType:     u.FileType,
		FileSize:     u.FileSize,
		ClientName:   u.ClientName,
		DocumentType: string(u.DocumentType),
		Status:       string(u.Status),
		UploadedAt:   u.UploadedAt,
		ProcessedAt:  u.ProcessedAt,
		ErrorMessage: u.ErrorMessage,
	}
}

// ToListUploadResponse converts a slice of domain.Upload to UploadResponse DTOs
func ToListUploadResponse(uploads []domain.Upload) []UploadResponse {
	res := make([]UploadResponse, len(uploads))
	for i, u := range uploads {
		res[i] = ToUploadResponse(&u)
	}
	return res
}

// CoercionStatsResponse surfaces the silent fallback counters of a run.
type CoercionStatsResponse struct {
	AmountFallbacks int `json:"amountFallbacks"`
	DateFallbacks   int `json:"dateFallbacks"`
}

// PreviewResponse returns the extraction of a file without persisting
// anything, echoing the request metadata.
type PreviewResponse struct {
	Data         []*domain.NormalizedRow `json:"data"`
	FileName     string                  `json:"fileName"`
	FileSize     int64                   `json:"fileSize"`
	FileType     string                  `json:"fileType"`
	RecordCount  int                     `json:"recordCount"`
	ClientName   string                  `json:"clientName"`
	DocumentType string                  `json:"documentType"`
}

// ProcessResponse returns the outcome of a committed pipeline run.
type ProcessResponse struct {
	UploadID      string                `json:"uploadID"`
	ExtractionID  string                `json:"extractionID"`
	RecordCount   int                   `json:"recordCount"`
	CoercionStats CoercionStatsResponse `json:"coercionStats"`
}

// ToProcessResponse converts a domain.ProcessOutcome to ProcessResponse DTO
func ToProcessResponse(o *domain.ProcessOutcome) ProcessResponse {
	return ProcessResponse{
		UploadID:     o.UploadID,
		ExtractionID: o.ExtractionID,
		RecordCount:  o.RecordCount,
		CoercionStats: CoercionStatsResponse{
			AmountFallbacks: o.CoercionStats.AmountFallbacks,
			DateFallbacks:   o.CoercionStats.DateFallbacks,
		},
	}
}

// ExtractionResponse defines the data returned for an extraction result.
type ExtractionResponse struct {
	ExtractionID  string                  `json:"extractionID"`
	DocumentType  string                  `json:"documentType"`
	Rows          []*domain.NormalizedRow `json:"rows"`
	RecordCount   int                     `json:"recordCount"`
	CoercionStats CoercionStatsResponse   `json:"coercionStats"`
	ExtractedAt   time.Time               `json:"extractedAt"`
}

// UploadDetailResponse aggregates an upload with its extraction and records.
type UploadDetailResponse struct {
	Upload     UploadResponse           `json:"upload"`
	Extraction *ExtractionResponse      `json:"extraction,omitempty"`
	Records    []domain.FinancialRecord `json:"records"`
}

// ToUploadDetailResponse converts a domain.UploadDetail to its DTO.
func ToUploadDetailResponse(d *domain.UploadDetail) UploadDetailResponse {
	res := UploadDetailResponse{
		Upload:  ToUploadResponse(&d.Upload),
		Records: d.Records,
	}
	if d.Extraction != nil {
		res.Extraction = &ExtractionResponse{
			ExtractionID: d.Extraction.ExtractionID,
			DocumentType: string(d.Extraction.DocumentType),
			Rows:         d.Extraction.Rows,
			RecordCount:  d.Extraction.RecordCount,
			CoercionStats: CoercionStatsResponse{
				AmountFallbacks: d.Extraction.CoercionStats.AmountFallbacks,
				DateFallbacks:   d.Extraction.CoercionStats.DateFallbacks,
			},
			ExtractedAt: d.Extraction.ExtractedAt,
		}
	}
	return res
}
