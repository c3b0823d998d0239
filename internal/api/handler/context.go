package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxPrincipal extracts the authenticated username injected by the Auth
// middleware. An empty username past the middleware is an internal
// inconsistency and fails the request outright.
func ctxPrincipal(c echo.Context) (string, error) {
	userName, _ := c.Get("username").(string)
	if userName == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userName, nil
}
