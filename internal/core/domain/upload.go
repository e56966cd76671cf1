package domain

import "time"

// UploadStatus is the lifecycle state of an upload.
// Transitions are monotonic: pending -> processing -> completed | error.
// completed and error are terminal.
type UploadStatus string

const (
	UploadStatusPending    UploadStatus = "pending"
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusError      UploadStatus = "error"
)

// IsTerminal reports whether no further transitions may leave this status.
func (s UploadStatus) IsTerminal() bool {
	return s == UploadStatusCompleted || s == UploadStatusError
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// transition of the upload lifecycle.
func (s UploadStatus) CanTransitionTo(next UploadStatus) bool {
	switch s {
	case UploadStatusPending:
		return next == UploadStatusProcessing
	case UploadStatusProcessing:
		return next == UploadStatusCompleted || next == UploadStatusError
	default:
		return false
	}
}

// Upload is the audit record for one submitted file. It persists
// indefinitely, whatever the outcome of processing.
type Upload struct {
	UploadID     string       `json:"uploadID"`
	Filename     string       `json:"filename"`
	FileType     string       `json:"fileType"` // xlsx, xls, csv, pdf
	FileSize     int64        `json:"fileSize"` // bytes
	ClientName   string       `json:"clientName"`
	DocumentType DocumentType `json:"documentType"`
	Status       UploadStatus `json:"status"`
	UploadedAt   time.Time    `json:"uploadedAt"`
	ProcessedAt  *time.Time   `json:"processedAt,omitempty"`
	UserID       string       `json:"userID"`
	ErrorMessage *string      `json:"errorMessage,omitempty"`
}
