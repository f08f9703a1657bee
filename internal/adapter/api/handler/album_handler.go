package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/errors"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

const maxAlbumFiles = 10

type AlbumHandler struct {
	albumUseCase *usecase.AlbumUseCase
}

func NewAlbumHandler(albumUseCase *usecase.AlbumUseCase) *AlbumHandler {
	return &AlbumHandler{
		albumUseCase: albumUseCase,
	}
}

// Create accepts multipart form data with one or more "files" parts.
// Album photos skip the ingestion pipeline and go straight to the
// provider's permanent folder.
func (h *AlbumHandler) Create(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return response.Error(c, errors.Validation("Title is required", nil))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to parse form", err))
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.Error(c, errors.Validation("At least one file is required", nil))
	}
	if len(files) > maxAlbumFiles {
		return response.Error(c, errors.Validation(fmt.Sprintf("Too many files, maximum %d allowed", maxAlbumFiles), nil))
	}

	var uploads []usecase.Upload
	for _, fileHeader := range files {
		if fileHeader.Size > h.albumUseCase.MaxUploadBytes() {
			return response.Error(c, errors.Validation(fmt.Sprintf("%s exceeds the size limit", fileHeader.Filename), nil))
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			return response.Error(c, errors.Validation(fmt.Sprintf("%s is not an image", fileHeader.Filename), nil))
		}

		src, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Unable to read uploaded file", err))
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return response.Error(c, errors.BadRequest("Unable to read uploaded file", err))
		}

		uploads = append(uploads, usecase.Upload{Data: data, MimeType: mimeType})
	}

	albums, err := h.albumUseCase.Create(c.Request().Context(), usecase.AlbumInput{Title: title}, uploads)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, albums)
}

func (h *AlbumHandler) Get(c echo.Context) error {
	album, err := h.albumUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, album)
}

func (h *AlbumHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	albums, total, err := h.albumUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, albums, total, params.Page, params.PageSize)
}

func (h *AlbumHandler) Delete(c echo.Context) error {
	if err := h.albumUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Album photo deleted successfully",
	})
}
