package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"zero", "0", "$ 0"},
		{"small", "500", "$ 500"},
		{"thousands", "110000", "$ 110.000"},
		{"tax amount", "20900", "$ 20.900"},
		{"total", "130900", "$ 130.900"},
		{"millions", "1234567", "$ 1.234.567"},
		{"fraction rounds away", "130900.49", "$ 130.900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCOP(decimal.RequireFromString(tt.value))
			assert.Equal(t, tt.want, got)
		})
	}
}

// Formatting must be deterministic: the same value always renders to the
// same text, or the on-screen and printed totals could drift apart.
func TestFormatCOPStable(t *testing.T) {
	v := decimal.RequireFromString("987654")
	first := FormatCOP(v)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, FormatCOP(v))
	}
	assert.NotEmpty(t, first)
	assert.NotContains(t, first, "NaN")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "19", FormatPercent(decimal.RequireFromString("19.00")))
	assert.Equal(t, "19", FormatPercent(decimal.NewFromInt(19)))
	assert.Equal(t, "8.5", FormatPercent(decimal.RequireFromString("8.50")))
}
