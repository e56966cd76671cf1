package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/models"
)

// ToModelExtractedData converts a domain ExtractionResult to a model
// ExtractedData, serializing the row array and the coercion counters for the
// jsonb columns. ValidationErrors stays NULL when nothing fell back.
func ToModelExtractedData(d domain.ExtractionResult) (models.ExtractedData, error) {
	data, err := json.Marshal(d.Rows)
	if err != nil {
		return models.ExtractedData{}, fmt.Errorf("failed to marshal extraction rows: %w", err)
	}

	var validationErrors json.RawMessage
	if d.CoercionStats.Total() > 0 {
		validationErrors, err = json.Marshal(d.CoercionStats)
		if err != nil {
			return models.ExtractedData{}, fmt.Errorf("failed to marshal coercion stats: %w", err)
		}
	}

	return models.ExtractedData{
		ExtractionID:     d.ExtractionID,
		UploadID:         d.UploadID,
		DocumentType:     string(d.DocumentType),
		Data:             data,
		RecordCount:      d.RecordCount,
		ValidationErrors: validationErrors,
		ExtractedAt:      d.ExtractedAt,
	}, nil
}

// ToDomainExtractionResult converts a model ExtractedData back to a domain
// ExtractionResult.
func ToDomainExtractionResult(m models.ExtractedData) (domain.ExtractionResult, error) {
	d := domain.ExtractionResult{
		ExtractionID: m.ExtractionID,
		UploadID:     m.UploadID,
		DocumentType: domain.DocumentType(m.DocumentType),
		RecordCount:  m.RecordCount,
		ExtractedAt:  m.ExtractedAt,
	}

	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &d.Rows); err != nil {
			return domain.ExtractionResult{}, fmt.Errorf("failed to unmarshal extraction rows: %w", err)
		}
	}
	if len(m.ValidationErrors) > 0 {
		if err := json.Unmarshal(m.ValidationErrors, &d.CoercionStats); err != nil {
			return domain.ExtractionResult{}, fmt.Errorf("failed to unmarshal coercion stats: %w", err)
		}
	}
	return d, nil
}
