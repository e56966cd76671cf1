// Package fieldmap canonicalizes raw spreadsheet headers into the field names
// the record materializer understands. Normalization is a pure, total
// function; canonicalization goes through a per-document-type synonym
// dictionary injected as data.
package fieldmap

import (
	"regexp"
	"strings"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// \w is ASCII [0-9A-Za-z_]; accented letters are deleted, not substituted.
	punctuation = regexp.MustCompile(`[^\w\s]`)
	underscored = regexp.MustCompile(`_([a-z])`)
)

// NormalizeHeader folds a raw header into a normalized token: trims
// whitespace, collapses internal whitespace runs to single underscores,
// deletes punctuation, and converts "_x" sequences into camel-case
// boundaries. "Fecha  pago " becomes "fechaPago"-style when the header is
// lowercase after the underscore.
func NormalizeHeader(raw string) string {
	token := strings.TrimSpace(raw)
	token = whitespaceRuns.ReplaceAllString(token, "_")
	token = punctuation.ReplaceAllString(token, "")
	token = underscored.ReplaceAllStringFunc(token, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	return strings.TrimPrefix(token, "_")
}

// Dictionary maps, per document type, known synonym tokens to one canonical
// field name. Lookups are case-sensitive on the already-normalized token;
// unknown tokens pass through as their own canonical name.
type Dictionary map[domain.DocumentType]map[string]string

// Canonicalize resolves a normalized token into its canonical field name for
// the given document type. Total: never fails, unknown tokens pass through.
func (d Dictionary) Canonicalize(token string, documentType domain.DocumentType) string {
	table, ok := d[documentType]
	if !ok {
		return token
	}
	if canonical, known := table[token]; known {
		return canonical
	}
	return token
}

// NormalizeRow derives a NormalizedRow from a RawRow for the given document
// type. When two raw headers collapse onto the same canonical field, the
// later column's value overwrites the earlier one (last-write-wins in header
// encounter order).
func (d Dictionary) NormalizeRow(raw *domain.RawRow, documentType domain.DocumentType) *domain.NormalizedRow {
	normalized := domain.NewNormalizedRow()
	for _, header := range raw.Headers() {
		value, _ := raw.Get(header)
		canonical := d.Canonicalize(NormalizeHeader(header), documentType)
		normalized.Set(canonical, value)
	}
	return normalized
}

// NormalizeRows applies NormalizeRow over a whole extraction, preserving row
// order.
func (d Dictionary) NormalizeRows(raws []*domain.RawRow, documentType domain.DocumentType) []*domain.NormalizedRow {
	rows := make([]*domain.NormalizedRow, len(raws))
	for i, raw := range raws {
		rows[i] = d.NormalizeRow(raw, documentType)
	}
	return rows
}
