package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDistanceKm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "integer with unit",
			input:    "20 km",
			expected: 20,
		},
		{
			name:     "decimal with unit",
			input:    "20.5 km",
			expected: 20.5,
		},
		{
			name:     "thousands separator",
			input:    "1,234 km",
			expected: 1234,
		},
		{
			name:     "decimal comma",
			input:    "12,5 km",
			expected: 12.5,
		},
		{
			name:     "bare number",
			input:    "35",
			expected: 35,
		},
		{
			name:     "leading whitespace",
			input:    "  50 km",
			expected: 50,
		},
		{
			name:     "no unit suffix needed",
			input:    "7.25km",
			expected: 7.25,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "garbage input",
			input:    "about an hour",
			expected: 0,
		},
		{
			name:     "unit before number",
			input:    "km 20",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDistanceKm(tt.input))
		})
	}
}
