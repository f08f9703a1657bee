package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profiles := e.Group("/api/profiles")
	profiles.GET("", profileHandler.List)
	profiles.GET("/:id", profileHandler.Get)

	me := e.Group("/api/my-profile")
	me.Use(authMiddleware.Authenticate)
	me.GET("", profileHandler.GetMine)
	me.POST("", profileHandler.Create)
	me.PUT("", profileHandler.Update)
	me.DELETE("", profileHandler.Delete)
}
