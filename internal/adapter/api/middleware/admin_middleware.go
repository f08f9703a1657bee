package middleware

import (
	"net/http"

	"porosemi/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates management routes on the caller's stored role.
// It runs after Authenticate, which puts the verified uid in context.
type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly rejects callers whose user record does not carry the admin
// role. The role lives in Firestore, not in the token, so a demotion
// takes effect on the next request.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Sign in required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Could not check account role")
		}

		if user.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "This action needs an admin account")
		}

		return next(c)
	}
}
