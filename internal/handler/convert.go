package handler

import (
	"context"
	"net/http"

	"reprojection-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ConvertHandler handles JSON conversion requests
type ConvertHandler struct {
	service  ConvertService
	defaults models.ConversionDefaults
}

// Service interface for dependency injection
type ConvertService interface {
	ConvertTable(ctx context.Context, table *models.RecordTable, xField, yField, sourceCRS, targetCRS string) (*models.RecordTable, error)
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(svc ConvertService, defaults models.ConversionDefaults) *ConvertHandler {
	return &ConvertHandler{service: svc, defaults: defaults}
}

// Convert handles POST /api/v1/convert requests
//
//	@Summary		Convert table coordinates between reference systems
//	@Description	Projects the x/y columns of the submitted table from the source CRS to the target CRS and returns the table with Easting and Northing columns appended. Blank field names or CRS identifiers fall back to the configured defaults.
//	@Tags			convert
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ConversionRequest	true	"Table and conversion parameters"
//	@Success		200		{object}	models.ConversionResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/v1/convert [post]
func (h *ConvertHandler) Convert(c *gin.Context) {
	var req models.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ApplyDefaults(h.defaults)

	converted, err := h.service.ConvertTable(c.Request.Context(), &req.Table, req.XField, req.YField, req.SourceCRS, req.TargetCRS)
	if err != nil {
		status, message := failureStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Msg("conversion failed")
		}
		body := gin.H{"error": message}
		if kind := failureKind(err); kind != "" {
			body["kind"] = kind
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, models.ConversionResponse{Table: *converted})
}
