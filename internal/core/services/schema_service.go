package services

import (
	"context"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
)

// SchemaService serves the data schemas that describe the expected shape of
// each document type. Schemas are seeded by migrations and read-only here.
type SchemaService struct {
	schemaRepo portsrepo.SchemaReader
}

// NewSchemaService creates a new SchemaService.
func NewSchemaService(schemaRepo portsrepo.SchemaReader) *SchemaService {
	return &SchemaService{schemaRepo: schemaRepo}
}

// ListDataSchemas returns every registered data schema.
func (s *SchemaService) ListDataSchemas(ctx context.Context) ([]domain.DataSchema, error) {
	schemas, err := s.schemaRepo.ListDataSchemas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list data schemas: %w", err)
	}
	if schemas == nil {
		schemas = []domain.DataSchema{}
	}
	return schemas, nil
}
