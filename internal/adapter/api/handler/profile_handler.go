package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type profileRequest struct {
	Bio      string   `json:"bio" form:"bio"`
	Year     string   `json:"year" form:"year"`
	Phone    string   `json:"phone" form:"phone"`
	Location string   `json:"location" form:"location"`
	Degree   string   `json:"degree" form:"degree"`
	Roles    []string `json:"roles" form:"roles"`
	Tools    []string `json:"tools" form:"tools"`
}

func (r profileRequest) toInput() usecase.ProfileInput {
	year, _ := strconv.Atoi(r.Year)
	return usecase.ProfileInput{
		Bio:      r.Bio,
		Year:     year,
		Phone:    r.Phone,
		Location: r.Location,
		Degree:   r.Degree,
		Roles:    r.Roles,
		Tools:    r.Tools,
	}
}

func (h *ProfileHandler) Create(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	photo, err := uploadFromForm(c, "photo")
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Create(c.Request().Context(), getUserIDFromContext(c), req.toInput(), photo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profile)
}

func (h *ProfileHandler) GetMine(c echo.Context) error {
	profile, err := h.profileUseCase.GetByUserID(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profileUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	profiles, total, err := h.profileUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, profiles, total, params.Page, params.PageSize)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	photo, err := uploadFromForm(c, "photo")
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), getUserIDFromContext(c), req.toInput(), photo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.profileUseCase.Delete(c.Request().Context(), getUserIDFromContext(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile deleted successfully",
	})
}
