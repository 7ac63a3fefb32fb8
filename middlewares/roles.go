package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upasthiti/attendance-api/models"
)

// RequireRole passes when the actor's role is one of the listed roles.
// Admin always passes. Must run after RequireAuth.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "authentication required"})
			}
			for _, r := range roles {
				if u.Role.Satisfies(r) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "insufficient role"})
		}
	}
}
