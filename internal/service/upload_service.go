package service

import (
	"context"
	"fmt"
	"io"
	"math"

	"reprojection-api/internal/models"
	"reprojection-api/internal/repository"
	"reprojection-api/internal/tabular"
)

// TableConverter interface for dependency injection
type TableConverter interface {
	ConvertTable(ctx context.Context, table *models.RecordTable, xField, yField, sourceCRS, targetCRS string) (*models.RecordTable, error)
}

// ArtifactStore interface for dependency injection
type ArtifactStore interface {
	SaveUpload(name string, src io.Reader) (string, error)
	RemoveUpload(path string) error
	OutputWriter(name string) (io.WriteCloser, error)
	OutputPath(name string) (string, error)
	OutputInfo(name string) (int64, error)
	RemoveOutput(name string) error
}

// outputSuffix names converted artifacts after the columns they gained.
const outputSuffix = "_converted_Northing_Easting.xlsx"

// UploadService contains the workflow around one uploaded file: store it,
// parse it, convert it, write the converted workbook, clean up the upload.
type UploadService struct {
	converter TableConverter
	store     ArtifactStore
	defaults  models.ConversionDefaults
}

// NewUploadService creates a new upload service
func NewUploadService(converter TableConverter, store ArtifactStore, defaults models.ConversionDefaults) *UploadService {
	return &UploadService{converter: converter, store: store, defaults: defaults}
}

// ConvertUpload converts one uploaded table and stores the result as an xlsx
// artifact named after the project. Blank field names and CRS identifiers in
// the request fall back to the configured defaults. The stored upload is
// removed once conversion finishes, whatever the outcome, and a failed
// workbook write removes the partial artifact so it can never be downloaded.
func (s *UploadService) ConvertUpload(ctx context.Context, req models.UploadRequest) (*models.UploadResult, error) {
	req.ApplyDefaults(s.defaults)

	path, err := s.store.SaveUpload(req.FileName, req.File)
	if err != nil {
		return nil, fmt.Errorf("service: failed to store upload: %w", err)
	}
	defer s.store.RemoveUpload(path)

	table, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("service: failed to parse upload: %w", err)
	}

	converted, err := s.converter.ConvertTable(ctx, table, req.XField, req.YField, req.SourceCRS, req.TargetCRS)
	if err != nil {
		return nil, fmt.Errorf("service: conversion failed: %w", err)
	}

	outName := repository.SanitizeFilename(req.Project) + outputSuffix
	w, err := s.store.OutputWriter(outName)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create artifact: %w", err)
	}
	if err := tabular.WriteXLSX(w, converted); err != nil {
		w.Close()
		s.store.RemoveOutput(outName)
		return nil, fmt.Errorf("service: failed to write artifact: %w", err)
	}
	if err := w.Close(); err != nil {
		s.store.RemoveOutput(outName)
		return nil, fmt.Errorf("service: failed to write artifact: %w", err)
	}

	size, err := s.store.OutputInfo(outName)
	if err != nil {
		return nil, fmt.Errorf("service: failed to stat artifact: %w", err)
	}

	return &models.UploadResult{
		OutputName: outName,
		SizeKB:     math.Round(float64(size)/1024*10) / 10,
		Rows:       len(converted.Rows),
	}, nil
}

// OutputPath resolves a previously converted artifact for download.
func (s *UploadService) OutputPath(name string) (string, error) {
	return s.store.OutputPath(name)
}
