package handler

import (
	"github.com/labstack/echo/v4"

	"porosemi/internal/usecase"
	"porosemi/pkg/response"
	"porosemi/pkg/utils"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type contactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Country   string `json:"country"`
	Message   string `json:"message" validate:"required"`
}

func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contact, err := h.contactUseCase.Create(c.Request().Context(), usecase.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		Message:   req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, contact)
}

func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.contactUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}

func (h *ContactHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	contacts, total, err := h.contactUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, contacts, total, params.Page, params.PageSize)
}

func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.contactUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Contact message deleted successfully",
	})
}
