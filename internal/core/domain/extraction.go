package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RawRow is one physical row of the source file: an insertion-ordered mapping
// from original header string to raw cell value (string, number, or empty).
// It is produced once by the tabular reader and never mutated afterwards.
type RawRow struct {
	headers []string
	cells   map[string]any
}

// NewRawRow returns an empty raw row.
func NewRawRow() *RawRow {
	return &RawRow{cells: make(map[string]any)}
}

// Set records the value for a header, keeping first-seen header order.
func (r *RawRow) Set(header string, value any) {
	if _, exists := r.cells[header]; !exists {
		r.headers = append(r.headers, header)
	}
	r.cells[header] = value
}

// Get returns the value for a header.
func (r *RawRow) Get(header string) (any, bool) {
	v, ok := r.cells[header]
	return v, ok
}

// Headers returns the original headers in encounter order.
func (r *RawRow) Headers() []string {
	return r.headers
}

// Len returns the number of distinct headers in the row.
func (r *RawRow) Len() int {
	return len(r.headers)
}

// NormalizedRow maps canonical field names to raw cell values, derived from a
// RawRow and a DocumentType. Iteration order is insertion order; when two
// headers collapse onto the same canonical field the later write wins but the
// field keeps its original position.
type NormalizedRow struct {
	keys   []string
	values map[string]any
}

// NewNormalizedRow returns an empty normalized row.
func NewNormalizedRow() *NormalizedRow {
	return &NormalizedRow{values: make(map[string]any)}
}

// Set stores a value under a canonical field name (last write wins).
func (n *NormalizedRow) Set(field string, value any) {
	if _, exists := n.values[field]; !exists {
		n.keys = append(n.keys, field)
	}
	n.values[field] = value
}

// Get returns the value stored under field.
func (n *NormalizedRow) Get(field string) (any, bool) {
	v, ok := n.values[field]
	return v, ok
}

// GetString returns the value under field rendered as a string, or "" when
// the field is absent.
func (n *NormalizedRow) GetString(field string) string {
	v, ok := n.values[field]
	if !ok || v == nil {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Fields returns the canonical field names in insertion order.
func (n *NormalizedRow) Fields() []string {
	return n.keys
}

// Len returns the number of fields in the row.
func (n *NormalizedRow) Len() int {
	return len(n.keys)
}

// MarshalJSON renders the row as a JSON object in field insertion order.
func (n *NormalizedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(n.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (n *NormalizedRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("normalized row: expected JSON object, got %v", tok)
	}

	n.keys = nil
	n.values = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("normalized row: non-string key %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if num, isNum := value.(json.Number); isNum {
			if f, ferr := num.Float64(); ferr == nil {
				value = f
			} else {
				value = num.String()
			}
		}
		n.Set(key, value)
	}
	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// CoercionStats counts the silent best-effort fallbacks taken while coercing
// one upload's values. Malformed amounts degrade to zero and malformed dates
// to absent; the counts make that visible to callers and auditors.
type CoercionStats struct {
	AmountFallbacks int `json:"amountFallbacks"`
	DateFallbacks   int `json:"dateFallbacks"`
}

// Total returns the combined number of fallbacks.
func (s CoercionStats) Total() int {
	return s.AmountFallbacks + s.DateFallbacks
}

// Merge adds the counts of other into s.
func (s *CoercionStats) Merge(other CoercionStats) {
	s.AmountFallbacks += other.AmountFallbacks
	s.DateFallbacks += other.DateFallbacks
}

// ExtractionResult holds the full ordered set of normalized rows extracted
// from one upload, exactly as they looked before materialization. Immutable
// once written; kept for preview and audit even when later steps fail.
type ExtractionResult struct {
	ExtractionID  string           `json:"extractionID"`
	UploadID      string           `json:"uploadID"`
	DocumentType  DocumentType     `json:"documentType"`
	Rows          []*NormalizedRow `json:"rows"`
	RecordCount   int              `json:"recordCount"`
	CoercionStats CoercionStats    `json:"coercionStats"`
	ExtractedAt   time.Time        `json:"extractedAt"`
}
