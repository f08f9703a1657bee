package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type ratingRequest struct {
	Label  string `json:"label"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

func (h *RatingHandler) Create(c echo.Context) error {
	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.Create(c.Request().Context(), usecase.RatingInput{
		Label:  req.Label,
		Rating: req.Rating,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rating)
}

func (h *RatingHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	ratings, total, err := h.ratingUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, ratings, total, params.Page, params.PageSize)
}

func (h *RatingHandler) Summary(c echo.Context) error {
	summary, err := h.ratingUseCase.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *RatingHandler) Delete(c echo.Context) error {
	if err := h.ratingUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Rating deleted successfully",
	})
}
