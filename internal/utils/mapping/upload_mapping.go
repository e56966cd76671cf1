package mapping

import (
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/models"
)

// ToModelUpload converts a domain Upload to a model Upload
func ToModelUpload(d domain.Upload) models.Upload {
	return models.Upload{
		UploadID:     d.UploadID,
		Filename:     d.Filename,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		ClientName:   d.ClientName,
		DocumentType: string(d.DocumentType),
		Status:       models.UploadStatus(d.Status),
		UploadedAt:   d.UploadedAt,
		ProcessedAt:  d.ProcessedAt,
		UserID:       d.UserID,
		ErrorMessage: d.ErrorMessage,
	}
}

// ToDomainUpload converts a model Upload to a domain Upload
func ToDomainUpload(m models.Upload) domain.Upload {
	return domain.Upload{
		UploadID:     m.UploadID,
		Filename:     m.Filename,
		FileType:     m.FileType,
		FileSize:     m.FileSize,
		ClientName:   m.ClientName,
		DocumentType: domain.DocumentType(m.DocumentType),
		Status:       domain.UploadStatus(m.Status),
		UploadedAt:   m.UploadedAt,
		ProcessedAt:  m.ProcessedAt,
		UserID:       m.UserID,
		ErrorMessage: m.ErrorMessage,
	}
}

// ToDomainUploadSlice converts a slice of model Uploads to a slice of domain Uploads
func ToDomainUploadSlice(ms []models.Upload) []domain.Upload {
	ds := make([]domain.Upload, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUpload(m)
	}
	return ds
}
