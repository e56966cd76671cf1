package mapping

import (
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/models"
)

// ToDomainDataSchema converts a model DataSchema to a domain DataSchema
func ToDomainDataSchema(m models.DataSchema) domain.DataSchema {
	return domain.DataSchema{
		SchemaID:     m.SchemaID,
		Name:         m.Name,
		DocumentType: domain.DocumentType(m.DocumentType),
		Schema:       m.Schema,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainDataSchemaSlice converts a slice of model DataSchemas to a slice of domain DataSchemas
func ToDomainDataSchemaSlice(ms []models.DataSchema) []domain.DataSchema {
	ds := make([]domain.DataSchema, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDataSchema(m)
	}
	return ds
}
