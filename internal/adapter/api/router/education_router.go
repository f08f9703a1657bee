package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupEducationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	educationHandler := handler.GetEducationHandler()

	educations := e.Group("/api/educations")
	educations.Use(authMiddleware.Authenticate)
	educations.GET("", educationHandler.ListMine)
	educations.POST("", educationHandler.Create)
	educations.PUT("/:id", educationHandler.Update)
	educations.DELETE("/:id", educationHandler.Delete)
}
