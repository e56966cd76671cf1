package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/finconsulta/doc_ingest_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedRowKeepsInsertionOrder(t *testing.T) {
	row := domain.NewNormalizedRow()
	row.Set("fecha", "15/03/2024")
	row.Set("producto", "Tomate")
	row.Set("kgs", "1000")

	assert.Equal(t, []string{"fecha", "producto", "kgs"}, row.Fields())
	assert.Equal(t, 3, row.Len())
}

func TestNormalizedRowLastWriteWinsKeepsPosition(t *testing.T) {
	row := domain.NewNormalizedRow()
	row.Set("kgs", "500")
	row.Set("precio", "0,52")
	row.Set("kgs", "1000")

	v, ok := row.Get("kgs")
	require.True(t, ok)
	assert.Equal(t, "1000", v)
	assert.Equal(t, []string{"kgs", "precio"}, row.Fields())
}

func TestNormalizedRowJSONRoundTrip(t *testing.T) {
	row := domain.NewNormalizedRow()
	row.Set("fecha", "15/03/2024")
	row.Set("kgs", float64(1000))
	row.Set("producto", "Tomate")

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"15/03/2024","kgs":1000,"producto":"Tomate"}`, string(data))
	// marshalling must preserve field order, not sort keys
	assert.Equal(t, `{"fecha":"15/03/2024","kgs":1000,"producto":"Tomate"}`, string(data))

	decoded := domain.NewNormalizedRow()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, []string{"fecha", "kgs", "producto"}, decoded.Fields())
	assert.Equal(t, "Tomate", decoded.GetString("producto"))
	assert.Equal(t, "15/03/2024", decoded.GetString("fecha"))
}

func TestNormalizedRowGetString(t *testing.T) {
	row := domain.NewNormalizedRow()
	row.Set("producto", "Tomate")
	row.Set("kgs", float64(1000))

	assert.Equal(t, "Tomate", row.GetString("producto"))
	assert.Equal(t, "1000", row.GetString("kgs"))
	assert.Equal(t, "", row.GetString("missing"))
}

func TestRawRowOrderAndOverwrite(t *testing.T) {
	row := domain.NewRawRow()
	row.Set("Fecha", "15/03/2024")
	row.Set("Producto", "Tomate")
	row.Set("Fecha", "16/03/2024")

	assert.Equal(t, []string{"Fecha", "Producto"}, row.Headers())
	v, ok := row.Get("Fecha")
	require.True(t, ok)
	assert.Equal(t, "16/03/2024", v)
}

func TestCoercionStatsMerge(t *testing.T) {
	total := domain.CoercionStats{}
	total.Merge(domain.CoercionStats{AmountFallbacks: 2})
	total.Merge(domain.CoercionStats{AmountFallbacks: 1, DateFallbacks: 3})

	assert.Equal(t, 3, total.AmountFallbacks)
	assert.Equal(t, 3, total.DateFallbacks)
	assert.Equal(t, 6, total.Total())
}
