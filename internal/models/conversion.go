package models

import (
	"io"
	"strings"
)

// ConversionDefaults carries the deployment's default coordinate field names
// and CRS identifiers. They are defaults only: every operation accepts
// explicit values, and the defaults apply when a request leaves them blank.
type ConversionDefaults struct {
	XField    string `json:"x_field"`
	YField    string `json:"y_field"`
	SourceCRS string `json:"source_crs"`
	TargetCRS string `json:"target_crs"`
}

// ConversionRequest is the JSON payload accepted by the conversion API.
// Blank field names or CRS identifiers fall back to the configured defaults.
type ConversionRequest struct {
	Table     RecordTable `json:"table"`
	XField    string      `json:"x_field"`
	YField    string      `json:"y_field"`
	SourceCRS string      `json:"source_crs"`
	TargetCRS string      `json:"target_crs"`
}

// ApplyDefaults fills blank request fields from the deployment defaults.
func (r *ConversionRequest) ApplyDefaults(d ConversionDefaults) {
	r.XField = orDefault(r.XField, d.XField)
	r.YField = orDefault(r.YField, d.YField)
	r.SourceCRS = orDefault(r.SourceCRS, d.SourceCRS)
	r.TargetCRS = orDefault(r.TargetCRS, d.TargetCRS)
}

// ConversionResponse wraps the augmented table returned on success.
type ConversionResponse struct {
	Table RecordTable `json:"table"`
}

// UploadRequest describes one uploaded file to convert. File is the upload
// stream; FileName is the client-supplied name (used to pick the codec and
// never trusted as a path); Project names the converted artifact.
type UploadRequest struct {
	FileName  string
	File      io.Reader
	Project   string
	XField    string
	YField    string
	SourceCRS string
	TargetCRS string
}

// ApplyDefaults fills blank request fields from the deployment defaults.
func (r *UploadRequest) ApplyDefaults(d ConversionDefaults) {
	r.XField = orDefault(r.XField, d.XField)
	r.YField = orDefault(r.YField, d.YField)
	r.SourceCRS = orDefault(r.SourceCRS, d.SourceCRS)
	r.TargetCRS = orDefault(r.TargetCRS, d.TargetCRS)
}

// UploadResult reports a finished upload conversion.
type UploadResult struct {
	OutputName string  `json:"output_name"`
	SizeKB     float64 `json:"size_kb"`
	Rows       int     `json:"rows"`
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
