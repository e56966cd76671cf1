package services

import (
	portsrepo "github.com/finconsulta/doc_ingest_app/internal/core/ports/repositories"
	portssvc "github.com/finconsulta/doc_ingest_app/internal/core/ports/services"
	"github.com/finconsulta/doc_ingest_app/internal/platform/config"
	"github.com/finconsulta/doc_ingest_app/internal/utils/fieldmap"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Upload = NewUploadService(
		repos.UploadRepo,
		repos.ExtractionRepo,
		repos.RecordRepo,
		fieldmap.DefaultDictionary(),
	)
	container.Schema = NewSchemaService(repos.SchemaRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UploadSvcFacade = (*UploadService)(nil)
	_ portssvc.SchemaReaderSvc = (*SchemaService)(nil)
)
