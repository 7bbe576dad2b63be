package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"reprojection-api/internal/models"

	"github.com/xuri/excelize/v2"
)

// WriteFile encodes the table to path using the codec matching its extension.
func WriteFile(path string, table *models.RecordTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tabular: failed to create %s: %w", path, err)
	}
	if err := Write(f, table, filepath.Ext(path)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("tabular: failed to close %s: %w", path, err)
	}
	return nil
}

// Write encodes the table using the codec for the given file extension.
func Write(w io.Writer, table *models.RecordTable, ext string) error {
	switch strings.ToLower(ext) {
	case ".csv":
		return WriteCSV(w, table)
	case ".xlsx":
		return WriteXLSX(w, table)
	default:
		return fmt.Errorf("tabular: unsupported output format %q", ext)
	}
}

// WriteCSV writes the table as CSV, header row first.
func WriteCSV(w io.Writer, table *models.RecordTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("tabular: failed to write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("tabular: failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("tabular: failed to flush: %w", err)
	}
	return nil
}

// WriteXLSX writes the table as a single-sheet workbook. Cells that parse as
// finite numbers become numeric cells, so Easting/Northing come out as real
// numbers in a spreadsheet rather than text.
func WriteXLSX(w io.Writer, table *models.RecordTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for c, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("tabular: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("tabular: failed to write header cell %s: %w", cell, err)
		}
	}

	for r, row := range table.Rows {
		for c, raw := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("tabular: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(raw)); err != nil {
				return fmt.Errorf("tabular: failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("tabular: failed to write workbook: %w", err)
	}
	return nil
}

// cellValue maps a raw cell to the value written into the workbook.
func cellValue(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return raw
	}
	return v
}
