package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// Sync upserts the caller's user record from the verified token. The
// frontend calls it once after sign-in.
func (h *UserHandler) Sync(c echo.Context) error {
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)

	user, err := h.userUseCase.Sync(c.Request().Context(), getUserIDFromContext(c), email, name)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *UserHandler) SetRole(c echo.Context) error {
	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) SetActive(c echo.Context) error {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetActive(c.Request().Context(), c.Param("id"), req.Active)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
