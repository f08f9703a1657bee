package handler

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"porosemi/internal/domain/service"
	"porosemi/pkg/errors"
	"porosemi/pkg/logger"
	"porosemi/pkg/response"
)

// FileHandler streams finalized media out of the blob store. These are
// the URLs the pipeline writes into entity records, so everything here
// is public read-only.
type FileHandler struct {
	blobs service.BlobStore
}

var fileHandler *FileHandler

func NewFileHandler(blobs service.BlobStore) *FileHandler {
	return &FileHandler{
		blobs: blobs,
	}
}

func SetupFileHandler(blobs service.BlobStore) {
	fileHandler = NewFileHandler(blobs)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) Serve(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" {
		return response.Error(c, errors.BadRequest("Filename is required", nil))
	}

	blob, err := h.blobs.Get(c.Request().Context(), filename)
	if err != nil {
		return response.Error(c, err)
	}
	defer blob.Reader.Close()

	c.Response().Header().Set("Content-Type", blob.ContentType)
	c.Response().Header().Set("Content-Length", fmt.Sprintf("%d", blob.Size))
	c.Response().Header().Set("Content-Disposition", "inline")
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := io.Copy(c.Response().Writer, blob.Reader); err != nil {
		logger.Error("Failed to stream blob %s: %v", filename, err)
		return err
	}

	return nil
}
