package tabular_test

import (
	"testing"

	"github.com/finconsulta/doc_ingest_app/internal/apperrors"
	"github.com/finconsulta/doc_ingest_app/internal/utils/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mime     string
		want     tabular.Format
		wantErr  bool
	}{
		{"xlsx extension", "ventas.xlsx", "", tabular.FormatXLSX, false},
		{"xls extension", "ventas.XLS", "", tabular.FormatXLS, false},
		{"csv extension", "movimientos.csv", "text/plain", tabular.FormatCSV, false},
		{"pdf extension", "factura.pdf", "", tabular.FormatPDF, false},
		{"mime fallback", "export", "text/csv", tabular.FormatCSV, false},
		{"xlsx mime fallback", "export", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", tabular.FormatXLSX, false},
		{"docx rejected", "contrato.docx", "application/msword", "", true},
		{"no hint rejected", "archivo", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tabular.DetectFormat(tt.fileName, tt.mime)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCSV(t *testing.T) {
	data := []byte("fecha,producto,kgs\n15/03/2024,Tomate,1000\n16/03/2024,Pepino,250\n")

	rows, err := tabular.Read(data, "ventas.csv", "text/csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"fecha", "producto", "kgs"}, rows[0].Headers())
	v, ok := rows[0].Get("producto")
	require.True(t, ok)
	assert.Equal(t, "Tomate", v)
	v, _ = rows[1].Get("kgs")
	assert.Equal(t, "250", v)
}

func TestReadCSVQuotedDecimalComma(t *testing.T) {
	data := []byte("producto,precio\nTomate,\"0,52\"\n")

	rows, err := tabular.Read(data, "precios.csv", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	v, _ := rows[0].Get("precio")
	assert.Equal(t, "0,52", v)
}

func TestReadCSVShortRowPadsEmptyString(t *testing.T) {
	data := []byte("fecha,producto,kgs\n15/03/2024,Tomate\n")

	rows, err := tabular.Read(data, "ventas.csv", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// missing trailing cell must become "", not be absent
	v, ok := rows[0].Get("kgs")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestReadCSVWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("fecha,importe\n01/01/2024,100\n")...)

	rows, err := tabular.Read(data, "gastos.csv", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"fecha", "importe"}, rows[0].Headers())
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	data := []byte("fecha,importe\n01/01/2024,100\n,\n02/01/2024,200\n")

	rows, err := tabular.Read(data, "gastos.csv", "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadCSVHeaderOnlyIsEmptyDocument(t *testing.T) {
	data := []byte("fecha,producto,kgs\n")

	_, err := tabular.Read(data, "vacio.csv", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmptyDocument)
}

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := tabular.Read([]byte("whatever"), "contrato.docx", "application/msword")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestReadSpreadsheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Fecha", "Producto", "Kgs"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"15/03/2024", "Tomate", "1000"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"16/03/2024", "Pepino", "250"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, readErr := tabular.Read(buf.Bytes(), "ventas.xlsx", "")
	require.NoError(t, readErr)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Fecha", "Producto", "Kgs"}, rows[0].Headers())
	v, _ := rows[1].Get("Producto")
	assert.Equal(t, "Pepino", v)
}

func TestReadSpreadsheetOnlyFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	first := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(first, "A1", &[]any{"fecha", "importe"}))
	require.NoError(t, f.SetSheetRow(first, "A2", &[]any{"01/01/2024", "100"}))
	_, err := f.NewSheet("Hoja2")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Hoja2", "A1", &[]any{"otro", "encabezado"}))
	require.NoError(t, f.SetSheetRow("Hoja2", "A2", &[]any{"x", "y"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, readErr := tabular.Read(buf.Bytes(), "libro.xlsx", "")
	require.NoError(t, readErr)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"fecha", "importe"}, rows[0].Headers())
}

func TestReadSpreadsheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, readErr := tabular.Read(buf.Bytes(), "vacio.xlsx", "")
	require.Error(t, readErr)
	assert.ErrorIs(t, readErr, apperrors.ErrEmptyDocument)
}
