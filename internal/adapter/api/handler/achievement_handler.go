package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type AchievementHandler struct {
	achievementUseCase *usecase.AchievementUseCase
}

func NewAchievementHandler(achievementUseCase *usecase.AchievementUseCase) *AchievementHandler {
	return &AchievementHandler{
		achievementUseCase: achievementUseCase,
	}
}

type achievementRequest struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Issuer      string   `json:"issuer" form:"issuer" validate:"required"`
	Label       string   `json:"label" form:"label"`
	IssueDate   string   `json:"issue_date" form:"issue_date"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category"`
	Level       string   `json:"level" form:"level"`
	Tags        []string `json:"tags" form:"tags"`
}

// Create accepts multipart form data with an optional "file" part. The
// record comes back immediately; its media status reports the pipeline.
func (h *AchievementHandler) Create(c echo.Context) error {
	var req achievementRequest
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

	achievement, err := h.achievementUseCase.Create(c.Request().Context(), usecase.AchievementInput{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Label:       req.Label,
		IssueDate:   req.IssueDate,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Tags:        req.Tags,
	}, upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, achievement)
}

func (h *AchievementHandler) Update(c echo.Context) error {
	var req achievementRequest
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

	achievement, err := h.achievementUseCase.Update(c.Request().Context(), c.Param("id"), usecase.AchievementInput{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Label:       req.Label,
		IssueDate:   req.IssueDate,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Tags:        req.Tags,
	}, upload)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, achievement)
}

func (h *AchievementHandler) Get(c echo.Context) error {
	achievement, err := h.achievementUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, achievement)
}

func (h *AchievementHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	filter := make(map[string]interface{})
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}
	if pinned := c.QueryParam("pinned"); pinned != "" {
		if v, err := strconv.ParseBool(pinned); err == nil {
			filter["pinned"] = v
		}
	}

	achievements, total, err := h.achievementUseCase.List(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, achievements, total, params.Page, params.PageSize)
}

func (h *AchievementHandler) SetPinned(c echo.Context) error {
	var req struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	achievement, err := h.achievementUseCase.SetPinned(c.Request().Context(), c.Param("id"), req.Pinned)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, achievement)
}

func (h *AchievementHandler) Delete(c echo.Context) error {
	if err := h.achievementUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Achievement deleted successfully",
	})
}
