package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError_Error(t *testing.T) {
	err := &ConversionError{
		Kind:    MissingColumns,
		Detail:  "missing required columns: x, y",
		Columns: []string{"x", "y"},
	}

	assert.Equal(t, "missing_columns: missing required columns: x, y", err.Error())
}

func TestConversionError_Unwrap(t *testing.T) {
	cause := errors.New("proj: crs not found")
	err := &ConversionError{Kind: InvalidCrsIdentifier, Detail: "bad CRS", Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestFormatRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     []int
		expected string
	}{
		{
			name:     "single row",
			rows:     []int{3},
			expected: "3",
		},
		{
			name:     "several rows",
			rows:     []int{1, 2, 5},
			expected: "1, 2, 5",
		},
		{
			name:     "truncates past the cap",
			rows:     []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			expected: "1, 2, 3, 4, 5, 6, 7, 8, 9, 10 and 2 more",
		},
		{
			name:     "empty",
			rows:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRows(tt.rows))
		})
	}
}
