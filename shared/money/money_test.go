package money_test

import (
	"rentello/shared/money"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "zero",
			amount:   0,
			expected: "$0.00",
		},
		{
			name:     "simple amount",
			amount:   236,
			expected: "$236.00",
		},
		{
			name:     "fractional amount",
			amount:   401.2,
			expected: "$401.20",
		},
		{
			name:     "thousands separator",
			amount:   1234.5,
			expected: "$1,234.50",
		},
		{
			name:     "millions separator",
			amount:   1234567.89,
			expected: "$1,234,567.89",
		},
		{
			name:     "negative amount",
			amount:   -75.25,
			expected: "-$75.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := money.FormatPrice(tt.amount)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}
