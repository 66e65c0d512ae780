package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2026", FormatDate(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Feb 1, 2026", FormatDate(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{8500, "₹8,500"},
		{85000, "₹85,000"},
		{120000, "₹1,20,000"},
		{250000, "₹2,50,000"},
		{1234567, "₹12,34,567"},
		{10000000, "₹1,00,00,000"},
		{-4000, "-₹4,000"},
		{math.MaxInt64, "₹92,23,37,20,36,85,47,75,807"},
		{math.MinInt64, "-₹92,23,37,20,36,85,47,75,808"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount), "amount %d", tt.amount)
	}
}
