package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAlbumRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	albumHandler := handler.GetAlbumHandler()

	albums := e.Group("/api/albums")
	albums.GET("", albumHandler.List)
	albums.GET("/:id", albumHandler.Get)

	admin := e.Group("/api/albums")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", albumHandler.Create)
	admin.DELETE("/:id", albumHandler.Delete)
}
