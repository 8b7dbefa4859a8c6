package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

// RequireAuth extracts the bearer token from the Authorization header,
// resolves it through the verifier, and leaves the verified email on the
// context under "user_email". Any failure short-circuits with 401 before the
// downstream handler runs.
func RequireAuth(verifier utils.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "no token provided",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid authorization header format",
				})
			}

			identity, err := verifier.Verify(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}

			c.Set("user_email", identity.Email)
			return next(c)
		}
	}
}
