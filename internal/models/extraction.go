package models

import (
	"encoding/json"
	"time"
)

// ExtractedData holds the normalized output of one extraction run. Data is
// the full row array as jsonb; ValidationErrors carries the coercion
// fallback counters observed while parsing.
type ExtractedData struct {
	ExtractionID     string          `json:"extractionID"`
	UploadID         string          `json:"uploadID" db:"upload_id"`
	DocumentType     string          `json:"documentType" db:"document_type"`
	Data             json.RawMessage `json:"data"`
	RecordCount      int             `json:"recordCount" db:"record_count"`
	ValidationErrors json.RawMessage `json:"validationErrors,omitempty" db:"validation_errors"`
	ExtractedAt      time.Time       `json:"extractedAt" db:"extracted_at"`
}
