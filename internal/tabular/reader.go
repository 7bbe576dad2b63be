package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"reprojection-api/internal/models"

	"github.com/xuri/excelize/v2"
)

// ParseError reports client-supplied input that could not be read as a
// table: an unsupported format, a missing header row, or a malformed file.
// The HTTP layer answers these with a 400 rather than a 500.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tabular: %s: %v", e.Detail, e.Err)
	}
	return "tabular: " + e.Detail
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadFile parses the file at path using the codec matching its extension.
func ReadFile(path string) (*models.RecordTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, filepath.Ext(path))
}

// Read parses the stream using the codec for the given file extension.
func Read(r io.Reader, ext string) (*models.RecordTable, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, &ParseError{Detail: fmt.Sprintf("unsupported file format %q", ext)}
	}
}

// ReadCSV parses CSV input. The first record is the header; ragged data rows
// are padded or truncated to the header width rather than rejected, since
// exported spreadsheets routinely drop trailing empty cells.
func ReadCSV(r io.Reader) (*models.RecordTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable number of fields
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Detail: "malformed CSV", Err: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Detail: "file contains no header row"}
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "﻿")
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	table := &models.RecordTable{
		Columns: header,
		Rows:    make([][]string, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		table.Rows = append(table.Rows, padRow(rec, len(header)))
	}
	return table, nil
}

// ReadXLSX parses the first sheet of a workbook.
func ReadXLSX(r io.Reader) (*models.RecordTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Detail: "malformed workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Detail: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Detail: "failed to read sheet " + sheets[0], Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Detail: "file contains no header row"}
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &models.RecordTable{
		Columns: header,
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, rec := range rows[1:] {
		table.Rows = append(table.Rows, padRow(rec, len(header)))
	}
	return table, nil
}

// padRow normalizes a row to the header width: short rows gain empty cells,
// long rows lose the excess.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
