package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contactHandler := handler.GetContactHandler()

	e.POST("/api/contacts", contactHandler.Create, middleware.SubmissionRateLimit())

	admin := e.Group("/api/contacts")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", contactHandler.List)
	admin.GET("/:id", contactHandler.Get)
	admin.DELETE("/:id", contactHandler.Delete)
}
