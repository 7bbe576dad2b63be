package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FailureKind classifies the deterministic, input-caused ways a conversion
// can fail. None are transient: a failed conversion is never retried and a
// failure anywhere aborts the whole table, so no partial output is returned.
type FailureKind string

const (
	// MissingColumns - one or both coordinate columns are absent from the table.
	MissingColumns FailureKind = "missing_columns"
	// MissingCoordinateValues - a coordinate cell is empty in one or more rows.
	MissingCoordinateValues FailureKind = "missing_coordinate_values"
	// MalformedCoordinate - a coordinate value is non-numeric or outside the
	// representable longitude/latitude range.
	MalformedCoordinate FailureKind = "malformed_coordinate"
	// InvalidCrsIdentifier - a CRS identifier is malformed or unknown to the
	// projection engine.
	InvalidCrsIdentifier FailureKind = "invalid_crs_identifier"
	// ProjectionFailure - the engine could not compute the transformation for
	// a point, e.g. it falls outside the target CRS's valid domain.
	ProjectionFailure FailureKind = "projection_failure"
)

// maxListedRows caps how many row numbers a failure message spells out; the
// full list is always carried on the error for callers that want it.
const maxListedRows = 10

// ConversionError is the typed failure produced by the conversion pipeline.
// Kind is stable and machine-checkable; Detail is the human-readable message.
// Columns and Rows pinpoint the offending input where that is knowable. Row
// numbers are 1-based over the data rows, the header row excluded.
type ConversionError struct {
	Kind    FailureKind `json:"kind"`
	Detail  string      `json:"detail"`
	Columns []string    `json:"columns,omitempty"`
	Rows    []int       `json:"rows,omitempty"`
	Err     error       `json:"-"`
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// FormatRows renders a row-number list for failure messages, truncated past
// maxListedRows so a large table cannot produce an unbounded message.
func FormatRows(rows []int) string {
	var b strings.Builder
	for i, r := range rows {
		if i == maxListedRows {
			fmt.Fprintf(&b, " and %d more", len(rows)-maxListedRows)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(r))
	}
	return b.String()
}
