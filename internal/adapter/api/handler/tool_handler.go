package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/errors"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type ToolHandler struct {
	toolUseCase *usecase.ToolUseCase
}

func NewToolHandler(toolUseCase *usecase.ToolUseCase) *ToolHandler {
	return &ToolHandler{
		toolUseCase: toolUseCase,
	}
}

type toolRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
}

// Create requires the icon file; the pipeline runs inside the request
// and the response carries the final media state.
func (h *ToolHandler) Create(c echo.Context) error {
	var req toolRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	upload, err := uploadFromForm(c, "file")
	if err != nil {
		return response.Error(c, err)
	}
	if upload == nil {
		return response.Error(c, errors.Validation("An icon file is required", nil))
	}

	tool, err := h.toolUseCase.Create(c.Request().Context(), usecase.ToolInput{Title: req.Title}, *upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, tool)
}

func (h *ToolHandler) Update(c echo.Context) error {
	var req toolRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	upload, err := uploadFromForm(c, "file")
	if err != nil {
		return response.Error(c, err)
	}

	tool, err := h.toolUseCase.Update(c.Request().Context(), c.Param("id"), usecase.ToolInput{Title: req.Title}, upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tool)
}

func (h *ToolHandler) Get(c echo.Context) error {
	tool, err := h.toolUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tool)
}

func (h *ToolHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	tools, total, err := h.toolUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, tools, total, params.Page, params.PageSize)
}

func (h *ToolHandler) Delete(c echo.Context) error {
	if err := h.toolUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Tool deleted successfully",
	})
}
