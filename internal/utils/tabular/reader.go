// Package tabular decodes uploaded file bytes (xlsx/xls, csv, pdf) into raw
// untyped rows. It is a pure transform: no persistence, no network I/O.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// Format is the detected file format of an upload.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// MIME types accepted alongside the file extension, mirroring what browsers
// send for the supported formats.
var mimeFormats = map[string]Format{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": FormatXLSX,
	"application/vnd.ms-excel": FormatXLS,
	"text/csv":                 FormatCSV,
	"application/csv":          FormatCSV,
	"application/pdf":          FormatPDF,
}

// DetectFormat resolves the file format from the filename extension, falling
// back to the declared MIME type. Returns ErrUnsupportedFormat for anything
// outside xlsx/xls/csv/pdf.
func DetectFormat(fileName, declaredMIME string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	case ".pdf":
		return FormatPDF, nil
	}
	if format, ok := mimeFormats[strings.ToLower(declaredMIME)]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q (%s)", apperrors.ErrUnsupportedFormat, fileName, declaredMIME)
}

// Read decodes file bytes into an ordered sequence of raw rows.
//
// Spreadsheet and CSV files are read from their first sheet/table only; the
// first row is the header row and every cell is kept as text so original
// formatting survives. Empty cells become the empty string, never nil. PDF
// files yield a single opaque row carrying the extracted plain text and page
// count, pending a separate structuring step.
func Read(fileBytes []byte, fileName, declaredMIME string) ([]*domain.RawRow, error) {
	format, err := DetectFormat(fileName, declaredMIME)
	if err != nil {
		return nil, err
	}

	var rows []*domain.RawRow
	switch format {
	case FormatXLSX, FormatXLS:
		rows, err = readSpreadsheet(fileBytes)
	case FormatCSV:
		rows, err = readCSV(fileBytes)
	case FormatPDF:
		rows, err = readPDF(fileBytes, fileName)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrEmptyDocument, fileName)
	}
	return rows, nil
}

func readSpreadsheet(fileBytes []byte) ([]*domain.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	// First sheet only.
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rowsFromCells(cells), nil
}

func readCSV(fileBytes []byte) ([]*domain.RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(stripBOM(fileBytes)))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	var cells [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		cells = append(cells, record)
	}
	return rowsFromCells(cells), nil
}

// rowsFromCells maps a header row plus data rows onto RawRows. Rows shorter
// than the header are padded with "" so downstream field lookups stay total;
// rows with no content at all are dropped.
func rowsFromCells(cells [][]string) []*domain.RawRow {
	if len(cells) < 2 {
		return nil
	}
	headers := cells[0]

	var rows []*domain.RawRow
	for _, record := range cells[1:] {
		if isBlank(record) {
			continue
		}
		row := domain.NewRawRow()
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			value := ""
			if i < len(record) {
				value = record[i]
			}
			row.Set(header, value)
		}
		if row.Len() > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

// Canonical field names of the single row produced for PDF documents.
const (
	PDFTextField     = "text"
	PDFPageField     = "numpages"
	PDFMetadataField = "metadata"
)

// readPDF extracts the plain text and page count of the whole document into
// one raw row. Structured field extraction from PDFs is deferred to a later
// structuring step; consumers must treat this row as opaque text.
func readPDF(fileBytes []byte, fileName string) ([]*domain.RawRow, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for pageIndex := 1; pageIndex <= numPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		pageRows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, textRow := range pageRows {
			for _, word := range textRow.Content {
				text.WriteString(word.S)
			}
			text.WriteString("\n")
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return nil, nil
	}

	row := domain.NewRawRow()
	row.Set(PDFTextField, text.String())
	row.Set(PDFPageField, numPages)
	row.Set(PDFMetadataField, map[string]any{"filename": fileName, "pages": numPages})
	return []*domain.RawRow{row}, nil
}
