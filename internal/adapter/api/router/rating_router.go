package router

import (
	"porosemi/internal/adapter/api/handler"
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRatingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	ratingHandler := handler.GetRatingHandler()

	ratings := e.Group("/api/ratings")
	ratings.GET("/summary", ratingHandler.Summary)
	ratings.POST("", ratingHandler.Create, middleware.SubmissionRateLimit())

	admin := e.Group("/api/ratings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", ratingHandler.List)
	admin.DELETE("/:id", ratingHandler.Delete)
}
