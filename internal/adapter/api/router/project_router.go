package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()

	projects := e.Group("/api/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)

	admin := e.Group("/api/projects")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", projectHandler.Create)
	admin.PUT("/:id", projectHandler.Update)
	admin.PATCH("/:id/publish", projectHandler.SetPublished)
	admin.PATCH("/:id/pin", projectHandler.SetPinned)
	admin.DELETE("/:id", projectHandler.Delete)
}
