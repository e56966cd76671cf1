package domain

import (
	"encoding/json"
	"time"
)

// DataSchema describes the fields expected for a document type. Schemas are
// reference data surfaced to clients so they can label preview columns.
type DataSchema struct {
	SchemaID     string          `json:"schemaID"`
	Name         string          `json:"name"`
	DocumentType DocumentType    `json:"documentType"`
	Schema       json.RawMessage `json:"schema"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
