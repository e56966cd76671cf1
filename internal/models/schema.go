package models

import (
	"encoding/json"
	"time"
)

// DataSchema describes the expected field set for one document type.
type DataSchema struct {
	SchemaID     string          `json:"schemaID"`
	Name         string          `json:"name"`
	DocumentType string          `json:"documentType" db:"document_type"`
	Schema       json.RawMessage `json:"schema"` // JSON schema defining expected fields
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}
