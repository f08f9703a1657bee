package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardUseCase.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
