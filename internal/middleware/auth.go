package middleware

import (
	"net/http"
	"strings"

	"github.com/KamrujjamanRony/sura-tools-serverside/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Auth verifies a bearer token against the shared secret. A missing header
// is unauthorized; a present but invalid or expired token is forbidden.
// Decoded claims are attached to the context under "decoded".
func Auth(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "UnAuthorized access"})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			token := parts[len(parts)-1]

			claims, err := utils.VerifyToken(token, jwtSecretKey)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden access"})
			}

			c.Set("decoded", claims)

			return next(c)
		}
	}
}
