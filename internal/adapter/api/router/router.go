package router

import (
	"porosemi/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupFileRouter(e)
	SetupAchievementRouter(e, authMiddleware, adminMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupToolRouter(e, authMiddleware, adminMiddleware)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupEducationRouter(e, authMiddleware)
	SetupExperienceRouter(e, authMiddleware, adminMiddleware)
	SetupRoleRouter(e, authMiddleware, adminMiddleware)
	SetupRatingRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware, adminMiddleware)
	SetupAlbumRouter(e, authMiddleware, adminMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupDashboardRouter(e, authMiddleware, adminMiddleware)
}
