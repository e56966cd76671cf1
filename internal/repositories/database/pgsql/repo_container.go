package pgsql

import (
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	uploadRepo := newPgxUploadRepository(dbPool)
	extractionRepo := newPgxExtractionRepository(dbPool)
	recordRepo := newPgxRecordRepository(dbPool)
	schemaRepo := newPgxSchemaRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UploadRepo:     uploadRepo,
		ExtractionRepo: extractionRepo,
		RecordRepo:     recordRepo,
		SchemaRepo:     schemaRepo,
	}
}
