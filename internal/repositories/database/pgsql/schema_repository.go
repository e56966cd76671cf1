package pgsql

import (
	"context"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/finconsulta/doc_ingest_app/internal/models"
	"github.com/finconsulta/doc_ingest_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSchemaRepository struct {
	BaseRepository
}

// newPgxSchemaRepository creates a new repository for data schemas.
func newPgxSchemaRepository(pool *pgxpool.Pool) portsrepo.SchemaReader {
	return &PgxSchemaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SchemaReader = (*PgxSchemaRepository)(nil)

// ListDataSchemas retrieves every registered data schema.
func (r *PgxSchemaRepository) ListDataSchemas(ctx context.Context) ([]domain.DataSchema, error) {
	query := `
		SELECT id, name, document_type, schema, created_at, updated_at
		FROM data_schemas
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query data schemas: %w", err)
	}
	defer rows.Close()

	modelSchemas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DataSchema, error) {
		var schema models.DataSchema
		err := row.Scan(
			&schema.SchemaID,
			&schema.Name,
			&schema.DocumentType,
			&schema.Schema,
			&schema.CreatedAt,
			&schema.UpdatedAt,
		)
		return schema, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan data schemas: %w", err)
	}

	return mapping.ToDomainDataSchemaSlice(modelSchemas), nil
}
