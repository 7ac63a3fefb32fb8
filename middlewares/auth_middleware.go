package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/upasthiti/attendance-api/database"
	"github.com/upasthiti/attendance-api/models"
)

// Claims matches what the auth handler signs.
type Claims struct {
	Sub uint `json:"sub"`
	jwt.RegisteredClaims
}

const userContextKey = "user"

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "authentication required"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid authorization header"})
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer token (HS256) and resolves the acting
// user from the database, so tokens referencing removed users are refused.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid token"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid token"})
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "token expired"})
			}

			var user models.User
			if err := database.DB.First(&user, claims.Sub).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid token"})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "internal error"})
			}

			c.Set(userContextKey, &user)
			return next(c)
		}
	}
}

// CurrentUser returns the actor resolved by RequireAuth, or nil.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(userContextKey).(*models.User)
	return u
}

// SetCurrentUser attaches an already-resolved actor to the context.
// Used by tests that invoke handlers without the middleware chain.
func SetCurrentUser(c echo.Context, u *models.User) {
	c.Set(userContextKey, u)
}
