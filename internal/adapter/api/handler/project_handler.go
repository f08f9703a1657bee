package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type projectRequest struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Description string   `json:"description" form:"description"`
	TechStack   []string `json:"tech_stack" form:"tech_stack"`
	Features    []string `json:"features" form:"features"`
	Role        string   `json:"role" form:"role"`
	DemoURL     string   `json:"demo_url" form:"demo_url"`
	RepoURL     string   `json:"repo_url" form:"repo_url"`
}

func (r projectRequest) toInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		TechStack:   r.TechStack,
		Features:    r.Features,
		Role:        r.Role,
		DemoURL:     r.DemoURL,
		RepoURL:     r.RepoURL,
	}
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
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

	project, err := h.projectUseCase.Create(c.Request().Context(), req.toInput(), upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
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

	project, err := h.projectUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput(), upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projectUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	filter := make(map[string]interface{})
	if published := c.QueryParam("published"); published != "" {
		if v, err := strconv.ParseBool(published); err == nil {
			filter["published"] = v
		}
	}
	if pinned := c.QueryParam("pinned"); pinned != "" {
		if v, err := strconv.ParseBool(pinned); err == nil {
			filter["pinned"] = v
		}
	}

	projects, total, err := h.projectUseCase.List(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, projects, total, params.Page, params.PageSize)
}

func (h *ProjectHandler) SetPublished(c echo.Context) error {
	var req struct {
		Published bool `json:"published"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.SetPublished(c.Request().Context(), c.Param("id"), req.Published)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) SetPinned(c echo.Context) error {
	var req struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.SetPinned(c.Request().Context(), c.Param("id"), req.Pinned)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Project deleted successfully",
	})
}
