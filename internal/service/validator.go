package service

import (
	"fmt"
	"strconv"
	"strings"

	"reprojection-api/internal/models"
)

// Coordinate columns must stay inside the representable geographic domain
// when range checking is enabled.
const (
	minLongitude = -180.0
	maxLongitude = 180.0
	minLatitude  = -90.0
	maxLatitude  = 90.0
)

// Validator screens a table before any transformation work starts. A table
// that fails any check is rejected wholesale.
type Validator struct {
	checkRange bool
}

// NewValidator creates a Validator. With checkRange enabled, numeric
// coordinate values outside the geographic domain are rejected up front.
func NewValidator(checkRange bool) *Validator {
	return &Validator{checkRange: checkRange}
}

// Check verifies that both coordinate columns exist and that every row has a
// value in each; a row too short to reach a coordinate column counts as
// missing that value. Column presence is checked first; a table missing
// columns is never inspected cell by cell.
func (v *Validator) Check(table *models.RecordTable, xField, yField string) error {
	var missing []string
	for _, field := range []string{xField, yField} {
		if !table.HasColumn(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &models.ConversionError{
			Kind:    models.MissingColumns,
			Detail:  fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
			Columns: missing,
		}
	}

	xIdx := table.ColumnIndex(xField)
	yIdx := table.ColumnIndex(yField)

	var empty []int
	for i, row := range table.Rows {
		if strings.TrimSpace(cellAt(row, xIdx)) == "" || strings.TrimSpace(cellAt(row, yIdx)) == "" {
			empty = append(empty, i+1)
		}
	}
	if len(empty) > 0 {
		return &models.ConversionError{
			Kind:   models.MissingCoordinateValues,
			Detail: fmt.Sprintf("missing coordinate values in rows %s", models.FormatRows(empty)),
			Rows:   empty,
		}
	}

	if v.checkRange {
		return v.checkCoordinateRange(table, xIdx, yIdx)
	}
	return nil
}

// checkCoordinateRange rejects numeric coordinates outside the geographic
// domain. Cells that do not parse as numbers are left alone here; the
// transformer reports those with the offending value.
func (v *Validator) checkCoordinateRange(table *models.RecordTable, xIdx, yIdx int) error {
	var outOfRange []int
	for i, row := range table.Rows {
		x, xErr := strconv.ParseFloat(strings.TrimSpace(cellAt(row, xIdx)), 64)
		y, yErr := strconv.ParseFloat(strings.TrimSpace(cellAt(row, yIdx)), 64)
		if xErr == nil && (x < minLongitude || x > maxLongitude) {
			outOfRange = append(outOfRange, i+1)
			continue
		}
		if yErr == nil && (y < minLatitude || y > maxLatitude) {
			outOfRange = append(outOfRange, i+1)
		}
	}
	if len(outOfRange) > 0 {
		return &models.ConversionError{
			Kind:   models.MalformedCoordinate,
			Detail: fmt.Sprintf("coordinate values outside representable range in rows %s", models.FormatRows(outOfRange)),
			Rows:   outOfRange,
		}
	}
	return nil
}

// cellAt returns the cell at idx, or "" for rows too short to reach it: a
// row that ends before a coordinate column is missing that coordinate.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
