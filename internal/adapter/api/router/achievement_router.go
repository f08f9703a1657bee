package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAchievementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	achievementHandler := handler.GetAchievementHandler()

	achievements := e.Group("/api/achievements")
	achievements.GET("", achievementHandler.List)
	achievements.GET("/:id", achievementHandler.Get)

	admin := e.Group("/api/achievements")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", achievementHandler.Create)
	admin.PUT("/:id", achievementHandler.Update)
	admin.PATCH("/:id/pin", achievementHandler.SetPinned)
	admin.DELETE("/:id", achievementHandler.Delete)
}
