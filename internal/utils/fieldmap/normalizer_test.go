package fieldmap_test

import (
	"testing"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/finconsulta/doc_ingest_app/internal/utils/fieldmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trims whitespace", "  fecha  ", "fecha"},
		{"collapses internal runs", "fecha   pago", "fechaPago"},
		{"camel cases underscore boundary", "numero albaran", "numeroAlbaran"},
		{"deletes punctuation", "n. producto", "nProducto"},
		{"accented letters are dropped", "fecha albarán", "fechaAlbarn"},
		{"uppercase after underscore untouched", "Fecha Pago", "Fecha_Pago"},
		{"camel cases leading underscore", " _fecha", "Fecha"},
		{"strips leading underscore", "_Fecha", "Fecha"},
		{"plain token passes through", "kgs", "kgs"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldmap.NormalizeHeader(tt.raw))
		})
	}
}

func TestNormalizeHeaderIsIdempotentThroughCanonicalize(t *testing.T) {
	dict := fieldmap.DefaultDictionary()
	for _, header := range []string{"Kg", "n. albarán", "  fecha factura ", "desconocido"} {
		first := dict.Canonicalize(fieldmap.NormalizeHeader(header), domain.DocumentTypeProductionSales)
		second := dict.Canonicalize(fieldmap.NormalizeHeader(header), domain.DocumentTypeProductionSales)
		assert.Equal(t, first, second, "header %q", header)
	}
}

func TestCanonicalizeSynonyms(t *testing.T) {
	dict := fieldmap.DefaultDictionary()

	assert.Equal(t, "kgs", dict.Canonicalize("Kg", domain.DocumentTypeProductionSales))
	assert.Equal(t, "kgs", dict.Canonicalize("Kilos", domain.DocumentTypeProductionSales))
	assert.Equal(t, "numeroAlbaran", dict.Canonicalize("nAlbaran", domain.DocumentTypeProductionSales))
	assert.Equal(t, "date", dict.Canonicalize("fecha", domain.DocumentTypeInvoices))
	assert.Equal(t, "supplier", dict.Canonicalize("proveedor", domain.DocumentTypeExpenses))
	assert.Equal(t, "balance", dict.Canonicalize("saldo", domain.DocumentTypeBankStatements))
}

func TestCanonicalizeUnknownTokenPassesThrough(t *testing.T) {
	dict := fieldmap.DefaultDictionary()
	assert.Equal(t, "campoRaro", dict.Canonicalize("campoRaro", domain.DocumentTypeProductionSales))
}

func TestCanonicalizeOtherHasNoTable(t *testing.T) {
	dict := fieldmap.DefaultDictionary()
	// "other" passes everything through, even tokens other tables would map
	assert.Equal(t, "fecha", dict.Canonicalize("fecha", domain.DocumentTypeOther))
	assert.Equal(t, "Kg", dict.Canonicalize("Kg", domain.DocumentTypeOther))
}

func TestCanonicalizeIsCaseSensitive(t *testing.T) {
	dict := fieldmap.DefaultDictionary()
	// "KILOS" is not a listed synonym; case-sensitive lookup passes it through
	assert.Equal(t, "KILOS", dict.Canonicalize("KILOS", domain.DocumentTypeProductionSales))
}

func TestNormalizeRowLastWriteWinsOnCollision(t *testing.T) {
	dict := fieldmap.DefaultDictionary()

	raw := domain.NewRawRow()
	raw.Set("Kg", "900")
	raw.Set("producto", "Tomate")
	raw.Set("Kilos", "1000")

	row := dict.NormalizeRow(raw, domain.DocumentTypeProductionSales)

	v, ok := row.Get("kgs")
	require.True(t, ok)
	assert.Equal(t, "1000", v, "later column must overwrite the earlier one")
	assert.Equal(t, []string{"kgs", "producto"}, row.Fields())
}

func TestNormalizeRows(t *testing.T) {
	dict := fieldmap.DefaultDictionary()

	first := domain.NewRawRow()
	first.Set("fecha", "15/03/2024")
	first.Set("producto", "Tomate")
	second := domain.NewRawRow()
	second.Set("fecha", "16/03/2024")
	second.Set("producto", "Pepino")

	rows := dict.NormalizeRows([]*domain.RawRow{first, second}, domain.DocumentTypeProductionSales)
	require.Len(t, rows, 2)
	assert.Equal(t, "Tomate", rows[0].GetString("producto"))
	assert.Equal(t, "Pepino", rows[1].GetString("producto"))
}
