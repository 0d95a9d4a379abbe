package handlers

import (
	"github.com/campuskart/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserClaims returns the JWT claims stored by the auth middleware, or nil
// on an unauthenticated request
func getUserClaims(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// getUserIDFromContext returns the authenticated user's ID, 0 if absent
func getUserIDFromContext(c echo.Context) uint {
	claims := getUserClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
