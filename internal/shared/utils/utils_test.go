package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1,000"},
		{13100, "13,100"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(decimal.NewFromInt(tt.amount)))
	}
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "0", FormatDiscount(decimal.Zero))
	assert.Equal(t, "-1,000", FormatDiscount(decimal.NewFromInt(1000)))
	assert.Equal(t, "-900", FormatDiscount(decimal.NewFromInt(900)))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 4, DisplayWidth("Cola"))
	assert.Equal(t, 4, DisplayWidth("콜라"))
	assert.Equal(t, 6, DisplayWidth("Cola콜"))
	assert.Equal(t, 0, DisplayWidth(""))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Cola  ", PadRight("Cola", 6))
	assert.Equal(t, "콜라  ", PadRight("콜라", 6))
	assert.Equal(t, "  1,000", PadLeft("1,000", 7))
	assert.Equal(t, "LongName", PadRight("LongName", 4))
	assert.Equal(t, "LongName", PadLeft("LongName", 4))
}
