package dto

import (
	"encoding/json"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
)

// SchemaResponse defines the data returned for a document data schema.
type SchemaResponse struct {
	SchemaID     string          `json:"schemaID"`
	Name         string          `json:"name"`
	DocumentType string          `json:"documentType"`
	Schema       json.RawMessage `json:"schema"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToSchemaResponse converts a domain.DataSchema to SchemaResponse DTO
func ToSchemaResponse(s *domain.DataSchema) SchemaResponse {
	return SchemaResponse{
		SchemaID:     s.SchemaID,
		Name:         s.Name,
		DocumentType: string(s.DocumentType),
		Schema:       s.Schema,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToListSchemaResponse converts a slice of domain.DataSchema to DTOs
func ToListSchemaResponse(schemas []domain.DataSchema) []SchemaResponse {
	res := make([]SchemaResponse, len(schemas))
	for i, s := range schemas {
		res[i] = ToSchemaResponse(&s)
	}
	return res
}
