package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"10.50", 1050},
		{"20.00", 2000},
		{"20", 2000},
		{" 7.5 ", 750},
		{"0.01", 1},
		{"0.005", 1},
		{"0.004", 0},
		{"0", 0},
		{"-3.25", -325},
		{"1234567.89", 123456789},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	_, err := ParseAmount("")
	assert.ErrorIs(t, err, ErrEmptyAmount)

	_, err = ParseAmount("   ")
	assert.ErrorIs(t, err, ErrEmptyAmount)

	_, err = ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("$10")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("100000000000000000000")
	assert.ErrorIs(t, err, ErrAmountRange)
}

func TestParseAmountRejectsExtremeExponents(t *testing.T) {
	for _, raw := range []string{"1e-10000000", "1e10000000", "1E19", "5e-19"} {
		t.Run(raw, func(t *testing.T) {
			start := time.Now()
			_, err := ParseAmount(raw)
			assert.ErrorIs(t, err, ErrAmountRange)
			assert.Less(t, time.Since(start), 100*time.Millisecond)
		})
	}

	got, err := ParseAmount("1.05e2")
	require.NoError(t, err)
	assert.Equal(t, int64(10500), got)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1050, "$10.50"},
		{105000, "$1,050.00"},
		{123456789, "$1,234,567.89"},
		{100000000, "$1,000,000.00"},
		{-500, "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.cents))
		})
	}
}
