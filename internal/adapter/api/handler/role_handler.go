package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
)

type RoleHandler struct {
	roleUseCase *usecase.RoleUseCase
}

func NewRoleHandler(roleUseCase *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{
		roleUseCase: roleUseCase,
	}
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	role, err := h.roleUseCase.Create(c.Request().Context(), usecase.RoleInput{Name: req.Name})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, role)
}

func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, roles)
}

func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	role, err := h.roleUseCase.Update(c.Request().Context(), c.Param("id"), usecase.RoleInput{Name: req.Name})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, role)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roleUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Role deleted successfully",
	})
}
