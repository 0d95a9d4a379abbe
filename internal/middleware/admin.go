package middleware

import (
	"net/http"

	"github.com/campuskart/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// AdminOnly rejects requests whose token does not carry the ADMIN role.
// Must run after JWTAuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*models.JwtCustomClaims)
			if !ok || claims.Role != models.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. Admin only.")
			}
			return next(c)
		}
	}
}
