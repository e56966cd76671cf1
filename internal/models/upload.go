package models

import "time"

// UploadStatus indicates the lifecycle state of an upload.
type UploadStatus string

const (
	UploadPending    UploadStatus = "pending"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadError      UploadStatus = "error"
)

// Upload represents a single uploaded document and its processing state.
type Upload struct {
	UploadID     string       `json:"uploadID"`
	Filename     string       `json:"filename"`
	FileType     string       `json:"fileType" db:"file_type"` // csv, xls, xlsx, pdf
	FileSize     int64        `json:"fileSize" db:"file_size"` // in bytes
	ClientName   string       `json:"clientName" db:"client_name"`
	DocumentType string       `json:"documentType" db:"document_type"` // invoices, expenses, bank_statements, ...
	Status       UploadStatus `json:"status"`                          // Default: pending
	UploadedAt   time.Time    `json:"uploadedAt" db:"uploaded_at"`
	ProcessedAt  *time.Time   `json:"processedAt,omitempty" db:"processed_at"`
	UserID       string       `json:"userID" db:"user_id"`
	ErrorMessage *string      `json:"errorMessage,omitempty" db:"error_message"`
}
