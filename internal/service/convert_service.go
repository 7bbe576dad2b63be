package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"reprojection-api/internal/models"
)

// ProjectionEngine interface for dependency injection
type ProjectionEngine interface {
	Project(ctx context.Context, sourceCRS, targetCRS string, points []models.Point) ([]models.Point, error)
}

// Column names appended to every successfully converted table, in this order.
const (
	eastingColumn  = "Easting"
	northingColumn = "Northing"
)

// ConvertService runs the conversion pipeline: validate the table, parse the
// coordinate columns into points, project them, and append the projected
// columns to a copy of the input.
type ConvertService struct {
	engine    ProjectionEngine
	validator *Validator
}

func NewConvertService(engine ProjectionEngine, validator *Validator) *ConvertService {
	return &ConvertService{engine: engine, validator: validator}
}

// ConvertTable converts the coordinate columns of a table from the source CRS
// to the target CRS and returns a new table with Easting and Northing columns
// appended. The input table is never modified; any failure leaves no output.
// Output rows are normalized to the column width before the projected columns
// are appended, so a ragged input row cannot shift cells under the wrong
// headers.
//
// Points are built with X carrying the value from the x column (longitude for
// geographic sources) and Y the value from the y column (latitude), whatever
// axis order the CRS authority nominally defines.
func (s *ConvertService) ConvertTable(ctx context.Context, table *models.RecordTable, xField, yField, sourceCRS, targetCRS string) (*models.RecordTable, error) {
	if err := s.validator.Check(table, xField, yField); err != nil {
		return nil, err
	}

	xIdx := table.ColumnIndex(xField)
	yIdx := table.ColumnIndex(yField)

	points := make([]models.Point, len(table.Rows))
	for i, row := range table.Rows {
		x, err := parseCoordinate(row[xIdx], i+1)
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(row[yIdx], i+1)
		if err != nil {
			return nil, err
		}
		points[i] = models.Point{X: x, Y: y}
	}

	// The engine is invoked even for a table with zero rows so that bad CRS
	// identifiers are still reported.
	projected, err := s.engine.Project(ctx, sourceCRS, targetCRS, points)
	if err != nil {
		return nil, err
	}

	eastings := make([]string, len(projected))
	northings := make([]string, len(projected))
	for i, p := range projected {
		eastings[i] = strconv.FormatFloat(p.X, 'f', -1, 64)
		northings[i] = strconv.FormatFloat(p.Y, 'f', -1, 64)
	}

	out := table.Clone()
	out.NormalizeWidth()
	if err := out.AppendColumn(eastingColumn, eastings); err != nil {
		return nil, fmt.Errorf("service: failed to append %s: %w", eastingColumn, err)
	}
	if err := out.AppendColumn(northingColumn, northings); err != nil {
		return nil, fmt.Errorf("service: failed to append %s: %w", northingColumn, err)
	}
	return out, nil
}

// parseCoordinate parses one coordinate cell, reporting the offending value
// and its 1-based row on failure.
func parseCoordinate(cell string, row int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, &models.ConversionError{
			Kind:   models.MalformedCoordinate,
			Detail: fmt.Sprintf("row %d: %q is not a numeric coordinate", row, strings.TrimSpace(cell)),
			Rows:   []int{row},
			Err:    err,
		}
	}
	return v, nil
}
