package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type ExperienceHandler struct {
	experienceUseCase *usecase.ExperienceUseCase
}

func NewExperienceHandler(experienceUseCase *usecase.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: experienceUseCase,
	}
}

type experienceRequest struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	CompanyLogo      string   `json:"company_logo"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Duration         string   `json:"duration"`
	Type             string   `json:"type"`
	Mode             string   `json:"mode"`
	Responsibilities []string `json:"responsibilities"`
}

func (r experienceRequest) toInput() usecase.ExperienceInput {
	return usecase.ExperienceInput{
		Title:            r.Title,
		Company:          r.Company,
		CompanyLogo:      r.CompanyLogo,
		Location:         r.Location,
		Period:           r.Period,
		Duration:         r.Duration,
		Type:             r.Type,
		Mode:             r.Mode,
		Responsibilities: r.Responsibilities,
	}
}

func (h *ExperienceHandler) Create(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	experience, err := h.experienceUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, experience)
}

func (h *ExperienceHandler) Get(c echo.Context) error {
	experience, err := h.experienceUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, experience)
}

func (h *ExperienceHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	experiences, total, err := h.experienceUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, experiences, total, params.Page, params.PageSize)
}

func (h *ExperienceHandler) Update(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	experience, err := h.experienceUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, experience)
}

func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.experienceUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Experience deleted successfully",
	})
}
