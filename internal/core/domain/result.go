package domain

// ProcessOutcome summarizes one completed pipeline run over an upload.
type ProcessOutcome struct {
	UploadID      string        `json:"uploadID"`
	ExtractionID  string        `json:"extractionID"`
	RecordCount   int           `json:"recordCount"`
	CoercionStats CoercionStats `json:"coercionStats"`
}

// UploadDetail aggregates an upload with its extraction result and
// materialized records for the detail query surface.
type UploadDetail struct {
	Upload     Upload            `json:"upload"`
	Extraction *ExtractionResult `json:"extraction,omitempty"`
	Records    []FinancialRecord `json:"records"`
}
