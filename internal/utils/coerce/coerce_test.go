package coerce_test

import (
	"testing"
	"time"

	"github.com/finconsulta/doc_ingest_app/internal/utils/coerce"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
		ok    bool
	}{
		{"comma decimal", "1234,56", 123456, true},
		{"period decimal", "1234.56", 123456, true},
		{"integer string", "5200", 520000, true},
		{"sub-euro comma", "0,52", 52, true},
		{"float input", 12.345, 1235, true}, // rounds half away from zero
		{"negative float rounds away from zero", -12.345, -1235, true},
		{"int input", 7, 700, true},
		{"whitespace around value", "  10,5 ", 1050, true},
		{"negative comma decimal", "-3,10", -310, true},
		{"empty string is zero without fallback", "", 0, true},
		{"nil is zero without fallback", nil, 0, true},
		{"unparsable text falls back to zero", "abc", 0, false},
		{"thousands separators fall back", "1.234,56", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerce.ToMinorUnits(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestToQuantity(t *testing.T) {
	q, ok := coerce.ToQuantity("1000")
	require.True(t, ok)
	assert.True(t, q.Equal(decimal.NewFromInt(1000)))

	q, ok = coerce.ToQuantity("0,5")
	require.True(t, ok)
	assert.True(t, q.Equal(decimal.NewFromFloat(0.5)))

	q, ok = coerce.ToQuantity("n/a")
	assert.False(t, ok)
	assert.True(t, q.IsZero())
}

func TestToDateFormats(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	slash, ok := coerce.ToDate("15/03/2024")
	require.True(t, ok)
	require.NotNil(t, slash)
	assert.True(t, want.Equal(*slash))

	iso, ok := coerce.ToDate("2024-03-15")
	require.True(t, ok)
	require.NotNil(t, iso)
	assert.True(t, want.Equal(*iso))

	// both formats must agree on the calendar date
	assert.Equal(t, slash.Format("2006-01-02"), iso.Format("2006-01-02"))
}

func TestToDateTwoDigitYear(t *testing.T) {
	d, ok := coerce.ToDate("5/3/24")
	require.True(t, ok)
	require.NotNil(t, d)
	assert.Equal(t, "2024-03-05", d.Format("2006-01-02"))
}

func TestToDateEmptyIsAbsentNotError(t *testing.T) {
	d, ok := coerce.ToDate("")
	assert.True(t, ok)
	assert.Nil(t, d)

	d, ok = coerce.ToDate(nil)
	assert.True(t, ok)
	assert.Nil(t, d)
}

func TestToDateMalformedFallsBackToAbsent(t *testing.T) {
	for _, input := range []string{"pronto", "15-03-2024x", "31/02/2024", "1/2", "a/b/c"} {
		d, ok := coerce.ToDate(input)
		assert.Nil(t, d, "input %q", input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestToDatePassesThroughTimeValues(t *testing.T) {
	now := time.Now()
	d, ok := coerce.ToDate(now)
	require.True(t, ok)
	require.NotNil(t, d)
	assert.True(t, now.Equal(*d))

	d, ok = coerce.ToDate(time.Time{})
	assert.True(t, ok)
	assert.Nil(t, d)
}
