package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	admin := e.Group("/api/dashboard")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", dashboardHandler.Summary)
}
