package service

import (
	"testing"

	"reprojection-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Check(t *testing.T) {
	tests := []struct {
		name            string
		checkRange      bool
		table           *models.RecordTable
		expectedKind    models.FailureKind
		expectedColumns []string
		expectedRows    []int
	}{
		{
			name: "valid table",
			table: &models.RecordTable{
				Columns: []string{"name", "x", "y"},
				Rows: [][]string{
					{"Raleigh", "-78.6382", "35.7796"},
					{"Durham", "-78.8986", "35.9940"},
				},
			},
		},
		{
			name: "empty table is valid",
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows:    [][]string{},
			},
		},
		{
			name: "one coordinate column missing",
			table: &models.RecordTable{
				Columns: []string{"name", "x"},
				Rows:    [][]string{{"Raleigh", "-78.6382"}},
			},
			expectedKind:    models.MissingColumns,
			expectedColumns: []string{"y"},
		},
		{
			name: "both coordinate columns missing",
			table: &models.RecordTable{
				Columns: []string{"name", "address"},
				Rows:    [][]string{{"Raleigh", "Fayetteville St"}},
			},
			expectedKind:    models.MissingColumns,
			expectedColumns: []string{"x", "y"},
		},
		{
			name: "column names are case sensitive",
			table: &models.RecordTable{
				Columns: []string{"name", "X", "Y"},
				Rows:    [][]string{{"Raleigh", "-78.6382", "35.7796"}},
			},
			expectedKind:    models.MissingColumns,
			expectedColumns: []string{"x", "y"},
		},
		{
			name: "empty coordinate cells",
			table: &models.RecordTable{
				Columns: []string{"name", "x", "y"},
				Rows: [][]string{
					{"Raleigh", "-78.6382", "35.7796"},
					{"Durham", "", "35.9940"},
					{"Charlotte", "-80.8431", "   "},
				},
			},
			expectedKind: models.MissingCoordinateValues,
			expectedRows: []int{2, 3},
		},
		{
			name: "missing columns reported before missing values",
			table: &models.RecordTable{
				Columns: []string{"name", "x"},
				Rows:    [][]string{{"Raleigh", ""}},
			},
			expectedKind:    models.MissingColumns,
			expectedColumns: []string{"y"},
		},
		{
			name: "row too short for a coordinate column",
			table: &models.RecordTable{
				Columns: []string{"name", "x", "y"},
				Rows: [][]string{
					{"Raleigh", "-78.6382", "35.7796"},
					{"Durham", "-78.8986"},
				},
			},
			expectedKind: models.MissingCoordinateValues,
			expectedRows: []int{2},
		},
		{
			name: "empty row",
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows:    [][]string{{}},
			},
			expectedKind: models.MissingCoordinateValues,
			expectedRows: []int{1},
		},
		{
			name:       "longitude outside range",
			checkRange: true,
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows: [][]string{
					{"-78.6382", "35.7796"},
					{"200.1", "35.9940"},
				},
			},
			expectedKind: models.MalformedCoordinate,
			expectedRows: []int{2},
		},
		{
			name:       "latitude outside range",
			checkRange: true,
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows:    [][]string{{"-78.6382", "-90.5"}},
			},
			expectedKind: models.MalformedCoordinate,
			expectedRows: []int{1},
		},
		{
			name:       "boundary values pass",
			checkRange: true,
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows: [][]string{
					{"-180", "-90"},
					{"180", "90"},
				},
			},
		},
		{
			name:       "non-numeric cells are left to the transformer",
			checkRange: true,
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows:    [][]string{{"not-a-number", "35.7796"}},
			},
		},
		{
			name: "out of range accepted when range checking is off",
			table: &models.RecordTable{
				Columns: []string{"x", "y"},
				Rows:    [][]string{{"200.1", "95.0"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewValidator(tt.checkRange)

			err := validator.Check(tt.table, "x", "y")

			if tt.expectedKind == "" {
				assert.NoError(t, err)
				return
			}

			var convErr *models.ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.expectedKind, convErr.Kind)
			assert.Equal(t, tt.expectedColumns, convErr.Columns)
			assert.Equal(t, tt.expectedRows, convErr.Rows)
			assert.NotEmpty(t, convErr.Detail)
		})
	}
}

func TestValidator_Check_CustomFieldNames(t *testing.T) {
	validator := NewValidator(false)

	table := &models.RecordTable{
		Columns: []string{"station", "longitude", "latitude"},
		Rows:    [][]string{{"Raleigh", "-78.6382", "35.7796"}},
	}

	assert.NoError(t, validator.Check(table, "longitude", "latitude"))

	err := validator.Check(table, "lon", "lat")
	var convErr *models.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, models.MissingColumns, convErr.Kind)
	assert.Equal(t, []string{"lon", "lat"}, convErr.Columns)
}
