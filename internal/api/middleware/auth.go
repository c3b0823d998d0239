package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// Auth authenticates every request with either HTTP Basic credentials checked
// against the user store, or a Bearer token issued by the login endpoint. On
// success the principal's username and roles are injected into the context.
func Auth(users ports.UserService, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userName, password, ok := c.Request().BasicAuth(); ok {
				user, err := users.Authenticate(c.Request().Context(), userName, password)
				if err != nil {
					if errors.Is(err, domain.ErrInvalidCredentials) {
						c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="recipes"`)
						return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
					}
					return err
				}

				c.Set("username", user.UserName)
				c.Set("roles", user.Roles)
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="recipes"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userName, _ := claims["username"].(string)
			roles, _ := claims["roles"].(string)
			if userName == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("username", userName)
			c.Set("roles", roles)
			return next(c)
		}
	}
}
