package handler

import (
	"errors"
	"net/http"

	"reprojection-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DownloadHandler handles converted artifact downloads
type DownloadHandler struct {
	service ArtifactResolver
}

// Service interface for dependency injection
type ArtifactResolver interface {
	OutputPath(name string) (string, error)
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(svc ArtifactResolver) *DownloadHandler {
	return &DownloadHandler{service: svc}
}

// Download handles GET /download/:filename requests
//
//	@Summary		Download a converted artifact
//	@Description	Streams a previously converted workbook as an attachment.
//	@Tags			convert
//	@Produce		application/octet-stream
//	@Param			filename	path		string	true	"Artifact name reported by a conversion"
//	@Success		200			{file}		file
//	@Failure		404			{object}	map[string]string
//	@Router			/download/{filename} [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	name := c.Param("filename")

	path, err := h.service.OutputPath(name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such converted file"})
			return
		}
		log.Error().Err(err).Msg("artifact lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.FileAttachment(path, name)
}
