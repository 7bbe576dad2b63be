package handler

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"reprojection-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadHandler handles the browser upload flow
type UploadHandler struct {
	service  UploadService
	defaults models.ConversionDefaults
	maxBytes int64
}

// Service interface for dependency injection
type UploadService interface {
	ConvertUpload(ctx context.Context, req models.UploadRequest) (*models.UploadResult, error)
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(svc UploadService, defaults models.ConversionDefaults, maxUploadMB int64) *UploadHandler {
	return &UploadHandler{service: svc, defaults: defaults, maxBytes: maxUploadMB << 20}
}

// Index handles GET / requests
func (h *UploadHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Defaults": h.defaults})
}

// Convert handles POST /convert requests
//
//	@Summary		Convert an uploaded coordinate file
//	@Description	Accepts a .csv or .xlsx upload, projects its x/y columns, and renders a page linking to the converted workbook.
//	@Tags			convert
//	@Accept			multipart/form-data
//	@Produce		html
//	@Param			file		formData	file	true	"Table to convert (.csv or .xlsx)"
//	@Param			project		formData	string	true	"Project name used for the output file"
//	@Param			x_field		formData	string	false	"Column holding the x coordinate (longitude)"
//	@Param			y_field		formData	string	false	"Column holding the y coordinate (latitude)"
//	@Param			source_crs	formData	string	false	"Source CRS identifier"
//	@Param			target_crs	formData	string	false	"Target CRS identifier"
//	@Success		200	{string}	string	"result page"
//	@Failure		400	{string}	string	"upload form with error"
//	@Failure		422	{string}	string	"upload form with error"
//	@Router			/convert [post]
func (h *UploadHandler) Convert(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.renderError(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		h.renderError(c, http.StatusBadRequest, "no file selected")
		return
	}

	project := strings.TrimSpace(c.PostForm("project"))
	if project == "" {
		h.renderError(c, http.StatusBadRequest, "project name is required")
		return
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".csv", ".xlsx":
	case ".xls":
		h.renderError(c, http.StatusBadRequest, "legacy .xls workbooks are not supported; save the file as .xlsx and upload again")
		return
	default:
		h.renderError(c, http.StatusBadRequest, "unsupported file format; upload a .csv or .xlsx file")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "could not read the uploaded file")
		return
	}
	defer src.Close()

	result, err := h.service.ConvertUpload(c.Request.Context(), models.UploadRequest{
		FileName:  file.Filename,
		File:      src,
		Project:   project,
		XField:    c.PostForm("x_field"),
		YField:    c.PostForm("y_field"),
		SourceCRS: c.PostForm("source_crs"),
		TargetCRS: c.PostForm("target_crs"),
	})
	if err != nil {
		status, message := failureStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Msg("upload conversion failed")
		}
		h.renderError(c, status, message)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{"Result": result})
}

// renderError re-renders the upload form with an error banner.
func (h *UploadHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "index.html", gin.H{"Defaults": h.defaults, "Error": message})
}
