package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
)

type EducationHandler struct {
	educationUseCase *usecase.EducationUseCase
}

func NewEducationHandler(educationUseCase *usecase.EducationUseCase) *EducationHandler {
	return &EducationHandler{
		educationUseCase: educationUseCase,
	}
}

type educationRequest struct {
	Degree         string `json:"degree" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	GraduationYear int    `json:"graduation_year"`
}

func (h *EducationHandler) Create(c echo.Context) error {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	education, err := h.educationUseCase.Create(c.Request().Context(), getUserIDFromContext(c), usecase.EducationInput{
		Degree:         req.Degree,
		Institution:    req.Institution,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, education)
}

func (h *EducationHandler) ListMine(c echo.Context) error {
	entries, err := h.educationUseCase.ListMine(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *EducationHandler) Update(c echo.Context) error {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	education, err := h.educationUseCase.Update(c.Request().Context(), getUserIDFromContext(c), c.Param("id"), usecase.EducationInput{
		Degree:         req.Degree,
		Institution:    req.Institution,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, education)
}

func (h *EducationHandler) Delete(c echo.Context) error {
	if err := h.educationUseCase.Delete(c.Request().Context(), getUserIDFromContext(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Education entry deleted successfully",
	})
}
