package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupExperienceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	experienceHandler := handler.GetExperienceHandler()

	experiences := e.Group("/api/experiences")
	experiences.GET("", experienceHandler.List)
	experiences.GET("/:id", experienceHandler.Get)

	admin := e.Group("/api/experiences")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", experienceHandler.Create)
	admin.PUT("/:id", experienceHandler.Update)
	admin.DELETE("/:id", experienceHandler.Delete)
}
