package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reprojection-api/internal/projection"
	"reprojection-api/internal/service"
	"reprojection-api/internal/tabular"
)

func main() {
	file := flag.String("file", "", "Path to the CSV or XLSX file to convert")
	out := flag.String("out", "", "Path of the converted output (defaults to <file>_converted.<ext>)")
	xField := flag.String("x", "x", "Column holding the x coordinate (longitude)")
	yField := flag.String("y", "y", "Column holding the y coordinate (latitude)")
	sourceCRS := flag.String("source", "EPSG:4326", "Source CRS identifier")
	targetCRS := flag.String("target", "EPSG:6543", "Target CRS identifier")
	checkRange := flag.Bool("range", true, "Reject coordinates outside the geographic domain before projecting")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		outPath = defaultOutputPath(*file)
	}

	fmt.Printf("Converting %s from %s to %s\n", *file, *sourceCRS, *targetCRS)

	table, err := tabular.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading table: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d rows\n", len(table.Rows))

	svc := service.NewConvertService(projection.NewEngine(), service.NewValidator(*checkRange))

	converted, err := svc.ConvertTable(context.Background(), table, *xField, *yField, *sourceCRS, *targetCRS)
	if err != nil {
		fmt.Printf("Error converting table: %v\n", err)
		os.Exit(1)
	}

	if err := tabular.WriteFile(outPath, converted); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully converted %d rows to %s\n", len(converted.Rows), outPath)
}

func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_converted" + ext
}
