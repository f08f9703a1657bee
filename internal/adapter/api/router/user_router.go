package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/api/users")
	users.Use(authMiddleware.Authenticate)
	users.POST("/sync", userHandler.Sync)
	users.GET("/me", userHandler.GetMe)

	admin := e.Group("/api/admin/users")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", userHandler.List)
	admin.PATCH("/:id/role", userHandler.SetRole)
	admin.PATCH("/:id/active", userHandler.SetActive)
}
