package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRoleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	roleHandler := handler.GetRoleHandler()

	roles := e.Group("/api/roles")
	roles.GET("", roleHandler.List)

	admin := e.Group("/api/roles")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", roleHandler.Create)
	admin.PUT("/:id", roleHandler.Update)
	admin.DELETE("/:id", roleHandler.Delete)
}
