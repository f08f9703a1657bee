package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupToolRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	toolHandler := handler.GetToolHandler()

	tools := e.Group("/api/tools")
	tools.GET("", toolHandler.List)
	tools.GET("/:id", toolHandler.Get)

	admin := e.Group("/api/tools")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", toolHandler.Create)
	admin.PUT("/:id", toolHandler.Update)
	admin.DELETE("/:id", toolHandler.Delete)
}
