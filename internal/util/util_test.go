package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int64
	}{
		{
			name:     "zero value",
			input:    0,
			expected: 0,
		},
		{
			name:     "whole number",
			input:    150000,
			expected: 150000,
		},
		{
			name:     "fraction truncates toward zero",
			input:    12.9,
			expected: 12,
		},
		{
			name:     "negative fraction truncates toward zero",
			input:    -825.5,
			expected: -825,
		},
		{
			name:     "above max int64",
			input:    1e30,
			expected: math.MaxInt64,
		},
		{
			name:     "below min int64",
			input:    -1e30,
			expected: math.MinInt64,
		},
		{
			name:     "positive infinity",
			input:    math.Inf(1),
			expected: math.MaxInt64,
		},
		{
			name:     "negative infinity",
			input:    math.Inf(-1),
			expected: math.MinInt64,
		},
		{
			name:     "not a number",
			input:    math.NaN(),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AsInt64(tt.input)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestAsInt(t *testing.T) {
	require.Equal(t, 20, AsInt(20))
	require.Equal(t, 3, AsInt(3.99))
	require.Equal(t, 0, AsInt(math.NaN()))
}
